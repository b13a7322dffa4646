// Package cli 위키백과 섹션 도구의 명령줄 인터페이스
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"goc-wiki-section/app"
	"goc-wiki-section/config"
	"goc-wiki-section/logger"
	"goc-wiki-section/session"
	"goc-wiki-section/wiki"
)

// version 빌드 시 -ldflags 로 덮어씁니다
var version = "dev"

var (
	configPath string
	verbose    bool
)

// newApp 설정으로 App 을 만듭니다. 테스트에서 바꿔 끼웁니다
var newApp = func(cfg *config.Config) (*app.App, error) {
	return app.New(cfg)
}

var rootCmd = &cobra.Command{
	Use:   "wikisection",
	Short: "Summarize, translate and discuss Wikipedia sections",
	Long: `wikisection fetches a Wikipedia article, splits it into its top-level
sections and sends a chosen section to a language model for a summary,
a translation or a question-answering chat.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "설정 파일 경로")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "디버그 로그 출력")
}

// Execute 루트 명령을 실행합니다
func Execute() error {
	return rootCmd.Execute()
}

// openApp 설정을 읽고 App 을 만듭니다. 설정 파일이 없으면 기본값으로 만들고 계속합니다
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.LoadConfig(configPath)
	if errors.Is(err, config.ErrConfigCreated) {
		cmd.PrintErrf("⚠️  %s 파일을 기본값으로 만들었습니다. API 키를 설정해주세요.\n", configPath)
		cfg, err = config.LoadConfig(configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("설정 로드 실패: %w", err)
	}
	return newApp(cfg)
}

// requireLLM 언어 모델이 필요한 명령 전에 API 키를 확인하고, 없으면 터미널에서 입력받습니다
func requireLLM(cmd *cobra.Command, a *app.App) error {
	err := a.Config.Validate()
	if !errors.Is(err, config.ErrMissingAPIKey) {
		return err
	}
	key, perr := promptAPIKey(cmd, a.Config.Provider)
	if perr != nil {
		logger.Debug("API 키 입력 실패: %v", perr)
		return err
	}
	a.Config.SetAPIKey(key)
	return a.Config.Validate()
}

// loadSession URL 의 문서를 가져와 세션을 만듭니다
func loadSession(ctx context.Context, cmd *cobra.Command, a *app.App, rawURL string, factory session.TranscriptFactory) (*session.Session, error) {
	article, err := a.Loader.FetchURL(ctx, rawURL)
	if err != nil {
		return nil, describe(err)
	}
	logger.Info("문서 로드: %s (%s, %d자)", article.Title, article.Language, len([]rune(article.Content)))

	s := session.New(article, factory)
	if len(s.Titles()) == 0 {
		cmd.PrintErrln("이 문서에는 섹션이 없습니다.")
	}
	return s, nil
}

// selectSection 섹션을 선택하고, 없으면 문서의 섹션 목록을 오류에 담습니다
func selectSection(s *session.Session, title string) error {
	if err := s.Select(title); err != nil {
		titles := s.Titles()
		if len(titles) == 0 {
			return err
		}
		return fmt.Errorf("%w\n사용 가능한 섹션: %s", err, strings.Join(titles, ", "))
	}
	return nil
}

// describe 사용자에게 보여줄 오류 메시지로 바꿉니다
func describe(err error) error {
	var disambig *wiki.DisambiguationError
	switch {
	case errors.As(err, &disambig):
		var b strings.Builder
		fmt.Fprintf(&b, "'%s' 은(는) 여러 문서를 가리킵니다. 다음 중 하나를 선택하세요:", disambig.Title)
		for _, opt := range disambig.Options {
			fmt.Fprintf(&b, "\n  - %s", opt)
		}
		return &displayError{msg: b.String(), err: err}
	case errors.Is(err, wiki.ErrPageNotFound), errors.Is(err, wiki.ErrInvalidURL):
		return err
	default:
		return fmt.Errorf("문서 가져오기 실패: %w", err)
	}
}

// displayError 원래 오류는 유지하고 메시지만 바꿉니다
type displayError struct {
	msg string
	err error
}

func (e *displayError) Error() string { return e.msg }
func (e *displayError) Unwrap() error { return e.err }
