package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errNotTerminal 입력이 터미널이 아니라 키를 물어볼 수 없습니다
var errNotTerminal = errors.New("표준 입력이 터미널이 아닙니다")

// promptAPIKey 화면에 표시하지 않고 API 키를 입력받습니다
func promptAPIKey(cmd *cobra.Command, provider string) (string, error) {
	fd := int(os.Stdin.Fd())
	if cmd.InOrStdin() != os.Stdin || !term.IsTerminal(fd) {
		return "", errNotTerminal
	}

	cmd.PrintErrf("🔑 %s API 키를 입력하세요: ", provider)
	key, err := term.ReadPassword(fd)
	cmd.PrintErrln()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(key)), nil
}
