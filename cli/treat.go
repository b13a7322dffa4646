package cli

import (
	"bufio"
	"context"
	"strings"

	"github.com/spf13/cobra"

	"goc-wiki-section/app"
	"goc-wiki-section/export"
)

var (
	summarizeSave   bool
	summarizeNotion bool
	translateTo     string
	translateSave   bool
	translateNotion bool
	askSave         bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [url] [section]",
	Short: "Summarize one section with the language model",
	Args:  cobra.ExactArgs(2),
	RunE:  runSummarize,
}

var translateCmd = &cobra.Command{
	Use:   "translate [url] [section]",
	Short: "Translate one section with the language model",
	Args:  cobra.ExactArgs(2),
	RunE:  runTranslate,
}

var askCmd = &cobra.Command{
	Use:   "ask [url] [section] [question]",
	Short: "Ask questions about one section",
	Long: `Answers a question using only the text of the chosen section.
Without a question, reads questions line by line from standard input and
keeps the conversation going.

Chat commands:
  /clear - forget the conversation
  /save  - write the conversation to a file
  /quit  - stop`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAsk,
}

func init() {
	summarizeCmd.Flags().BoolVar(&summarizeSave, "save", false, "요약을 파일로 저장")
	summarizeCmd.Flags().BoolVar(&summarizeNotion, "notion", false, "요약을 Notion 페이지로 내보내기")
	translateCmd.Flags().StringVarP(&translateTo, "to", "t", "", "번역할 언어 (예: English)")
	translateCmd.Flags().BoolVar(&translateSave, "save", false, "번역을 파일로 저장")
	translateCmd.Flags().BoolVar(&translateNotion, "notion", false, "번역을 Notion 페이지로 내보내기")
	askCmd.Flags().BoolVar(&askSave, "save", false, "대화를 파일로 저장")
	rootCmd.AddCommand(summarizeCmd, translateCmd, askCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := requireLLM(cmd, a); err != nil {
		return err
	}

	ctx := context.Background()
	svc, err := a.Treatment(ctx)
	if err != nil {
		return err
	}
	s, err := loadSession(ctx, cmd, a, args[0], svc.NewTranscript)
	if err != nil {
		return err
	}
	if err := selectSection(s, args[1]); err != nil {
		return err
	}

	summary, err := svc.Summarize(ctx, s.SectionText())
	if err != nil {
		return err
	}
	cmd.Println(summary)

	return deliver(ctx, cmd, a, summarizeSave, summarizeNotion, export.Document{
		Kind:    export.KindSummary,
		Article: s.Article.Title,
		Section: s.Section(),
		Content: summary,
	})
}

func runTranslate(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := requireLLM(cmd, a); err != nil {
		return err
	}

	ctx := context.Background()
	svc, err := a.Treatment(ctx)
	if err != nil {
		return err
	}
	s, err := loadSession(ctx, cmd, a, args[0], svc.NewTranscript)
	if err != nil {
		return err
	}
	if err := selectSection(s, args[1]); err != nil {
		return err
	}

	translation, err := svc.Translate(ctx, s.SectionText(), translateTo)
	if err != nil {
		return err
	}
	cmd.Println(translation)

	return deliver(ctx, cmd, a, translateSave, translateNotion, export.Document{
		Kind:     export.KindTranslation,
		Article:  s.Article.Title,
		Section:  s.Section(),
		Language: strings.TrimSpace(translateTo),
		Content:  translation,
	})
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := requireLLM(cmd, a); err != nil {
		return err
	}

	ctx := context.Background()
	svc, err := a.Treatment(ctx)
	if err != nil {
		return err
	}
	s, err := loadSession(ctx, cmd, a, args[0], svc.NewTranscript)
	if err != nil {
		return err
	}
	if err := selectSection(s, args[1]); err != nil {
		return err
	}

	chatDoc := func() export.Document {
		return export.Document{
			Kind:    export.KindChat,
			Article: s.Article.Title,
			Section: s.Section(),
			Content: s.Transcript().Text(),
		}
	}

	if len(args) > 2 {
		answer, err := svc.Ask(ctx, s.Transcript(), strings.Join(args[2:], " "))
		if err != nil {
			return err
		}
		cmd.Println(answer)
		return deliver(ctx, cmd, a, askSave, false, chatDoc())
	}

	cmd.Printf("💬 '%s' 섹션에 대해 질문하세요 (/clear, /save, /quit)\n", s.Section())
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print("> ")
		if !scanner.Scan() {
			cmd.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return deliver(ctx, cmd, a, askSave, false, chatDoc())
		case "/clear":
			s.ClearChat()
			cmd.Println("🧹 대화를 지웠습니다.")
			continue
		case "/save":
			if err := save(ctx, cmd, a.Files, chatDoc()); err != nil {
				cmd.PrintErrf("❌ 오류: %v\n", err)
			}
			continue
		}

		answer, err := svc.Ask(ctx, s.Transcript(), line)
		if err != nil {
			cmd.PrintErrf("❌ 오류: %v\n", err)
			continue
		}
		cmd.Println(answer)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return deliver(ctx, cmd, a, askSave, false, chatDoc())
}

// deliver 플래그에 따라 파일이나 Notion 으로 내보냅니다
func deliver(ctx context.Context, cmd *cobra.Command, a *app.App, toFile, toNotion bool, doc export.Document) error {
	if toFile {
		if err := save(ctx, cmd, a.Files, doc); err != nil {
			return err
		}
	}
	if toNotion {
		exporter, err := a.Notion()
		if err != nil {
			return err
		}
		if err := save(ctx, cmd, exporter, doc); err != nil {
			return err
		}
	}
	return nil
}
