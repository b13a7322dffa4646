package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"goc-wiki-section/export"
)

var showSave bool

var sectionsCmd = &cobra.Command{
	Use:   "sections [url]",
	Short: "List the top-level sections of an article",
	Args:  cobra.ExactArgs(1),
	RunE:  runSections,
}

var showCmd = &cobra.Command{
	Use:   "show [url] [section]",
	Short: "Print the text of one section",
	Long: `Prints the body of a top-level section, from the end of its heading
to the next top-level heading. Sub-sections (=== ... ===) are included.`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showSave, "save", false, "섹션 본문을 파일로 저장")
	rootCmd.AddCommand(sectionsCmd, showCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	s, err := loadSession(context.Background(), cmd, a, args[0], nil)
	if err != nil {
		return err
	}

	cmd.Printf("📄 %s (%s)\n", s.Article.Title, s.Article.Language)
	for i, title := range s.Titles() {
		cmd.Printf("  %2d. %s\n", i+1, title)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	s, err := loadSession(ctx, cmd, a, args[0], nil)
	if err != nil {
		return err
	}
	if err := selectSection(s, args[1]); err != nil {
		return err
	}

	text := strings.TrimSpace(s.SectionText())
	cmd.Println(text)

	if showSave {
		return save(ctx, cmd, a.Files, export.Document{
			Kind:    export.KindSection,
			Article: s.Article.Title,
			Section: s.Section(),
			Content: text,
		})
	}
	return nil
}

// save 결과를 내보내고 위치를 출력합니다
func save(ctx context.Context, cmd *cobra.Command, exporter export.Exporter, doc export.Document) error {
	location, err := exporter.Export(ctx, doc)
	if err != nil {
		return err
	}
	cmd.Printf("💾 저장됨: %s\n", location)
	return nil
}
