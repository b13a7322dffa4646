package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

var (
	findTopK   int
	findAnswer bool
)

var findCmd = &cobra.Command{
	Use:   "find [url] [query]",
	Short: "Find the sections of an article that match a query",
	Long: `Indexes every top-level section of the article with embeddings and
lists the sections closest to the query. With --answer, the matching
sections are sent to the language model to answer the query as a question.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runFind,
}

func init() {
	findCmd.Flags().IntVarP(&findTopK, "top", "k", 3, "최대 결과 수")
	findCmd.Flags().BoolVarP(&findAnswer, "answer", "a", false, "찾은 섹션으로 질문에 답하기")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := requireLLM(cmd, a); err != nil {
		return err
	}
	if findTopK > 0 {
		a.Config.TopK = findTopK
	}

	ctx := context.Background()
	searcher, err := a.Searcher(ctx)
	if err != nil {
		return err
	}
	article, err := a.Loader.FetchURL(ctx, args[0])
	if err != nil {
		return describe(err)
	}
	if err := searcher.Index(ctx, article); err != nil {
		return err
	}

	query := strings.Join(args[1:], " ")
	if findAnswer {
		answer, err := searcher.Ask(ctx, query)
		if err != nil {
			return err
		}
		cmd.Println(answer.Text)
		if len(answer.Sections) > 0 {
			cmd.Printf("\n📎 참고한 섹션: %s\n", strings.Join(answer.Sections, ", "))
		}
		return nil
	}

	hits, err := searcher.Find(ctx, query)
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		cmd.Println("관련된 섹션이 없습니다.")
		return nil
	}
	for i, h := range hits {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, h.Title, h.Similarity)
	}
	return nil
}
