package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"goc-wiki-section/prompts"
)

var promptsForce bool

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Manage prompt templates",
}

var promptsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default prompts to prompts_path for editing",
	Args:  cobra.NoArgs,
	RunE:  runPromptsInit,
}

func init() {
	promptsInitCmd.Flags().BoolVarP(&promptsForce, "force", "f", false, "이미 있는 파일을 덮어씁니다")
	promptsCmd.AddCommand(promptsInitCmd)
	rootCmd.AddCommand(promptsCmd)
}

func runPromptsInit(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	path := a.Config.PromptsPath
	if path == "" {
		return errors.New("설정에 prompts_path 가 없습니다")
	}
	if _, err := os.Stat(path); err == nil && !promptsForce {
		return fmt.Errorf("%s 파일이 이미 있습니다 (--force 로 덮어쓰기)", path)
	}

	if err := prompts.Save(path, prompts.Default()); err != nil {
		return err
	}
	cmd.Printf("💾 프롬프트 견본 저장: %s\n", path)
	return nil
}
