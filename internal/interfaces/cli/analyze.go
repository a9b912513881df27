package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sendasalud/senda/internal/detection"
)

// newAnalyzeCmd builds the "senda analyze" command: run the full composite
// analysis over a message given as arguments or via --text.
func newAnalyzeCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "analyze [mensaje...]",
		Short: "Run the composite analysis on a message",
		Example: `  senda analyze "me siento muy triste y sola"
  senda analyze --text "no quiero seguir" -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			content := text
			if content == "" {
				content = strings.Join(args, " ")
			}
			if strings.TrimSpace(content) == "" {
				return fmt.Errorf("no message provided; pass it as arguments or via --text")
			}

			comp := cliCtx.Service.Analyze(detection.Message{Content: content})
			return PrintResult(cmd, comp)
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "message text to analyze")
	return cmd
}
