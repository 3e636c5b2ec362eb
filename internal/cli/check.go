package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/hare/internal/config"
	"github.com/shaiso/hare/internal/dispatch"
)

// NewCheckCmd создаёт команду проверки имени обработчика.
//
// Имя проверяется тем же кодом, что и в демоне; наличие скрипта на
// диске показывается как подсказка оператору.
func NewCheckCmd(outputFn func() *Output) *cobra.Command {
	var scriptRoot string

	cmd := &cobra.Command{
		Use:   "check <handler>",
		Short: "Validate a handler name and show the script path it resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			res, ok := dispatch.Resolve(
				map[string]string{"type": name},
				"type",
				scriptRoot,
			)
			if !ok {
				return fmt.Errorf("invalid handler name %q: only [A-Za-z0-9]+ is allowed", name)
			}

			_, statErr := os.Stat(res.ScriptPath)
			outputFn().Resolution(res, statErr == nil)
			return nil
		},
	}

	cmd.Flags().StringVar(&scriptRoot, "script-root", defaultScriptRoot(), "handler scripts directory")

	return cmd
}

// defaultScriptRoot — каталог скриптов из окружения или по умолчанию.
func defaultScriptRoot() string {
	if v := os.Getenv("HARE_SCRIPT_ROOT"); v != "" {
		return v
	}
	return config.DefaultScriptRoot
}
