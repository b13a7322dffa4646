package cli

import (
	"context"

	"github.com/spf13/cobra"

	"goc-wiki-section/ui"
)

// runUI 테스트에서 바꿔 끼웁니다
var runUI = ui.Run

var tuiCmd = &cobra.Command{
	Use:   "tui [url]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal interface.

Enter a Wikipedia URL, pick a section (or the whole page), then:
  s      - Summarize the section
  t      - Translate the section
  c      - Chat about the section (ctrl+l clears, ctrl+s saves)
  w      - Write the current text or result to a file
  n      - Export to Notion (when configured)
  Esc    - Back
  q      - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := requireLLM(cmd, a); err != nil {
		return err
	}

	svc, err := a.Treatment(context.Background())
	if err != nil {
		return err
	}

	deps := ui.Deps{
		Fetcher:  a.Loader,
		Treater:  svc,
		Files:    a.Files,
		Language: a.Config.Language,
		Model:    svc.ModelName(),
	}
	if notion, err := a.Notion(); err == nil {
		deps.Notion = notion
	}

	var initialURL string
	if len(args) > 0 {
		initialURL = args[0]
	}
	return runUI(deps, initialURL)
}
