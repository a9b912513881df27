package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sendasalud/senda/internal/detection/scales"
)

// newScalesCmd builds the "senda scales" command group.
func newScalesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scales",
		Short: "Clinical scale operations (PHQ-9, GAD-7)",
	}
	cmd.AddCommand(
		newScalesListCmd(),
		newScalesSuggestCmd(),
		newScalesAutoCmd(),
		newScalesScoreCmd(),
	)
	return cmd
}

func newScalesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available scale definitions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			defs := make([]*scales.Definition, 0, 2)
			for _, st := range []string{scales.TypePHQ9, scales.TypeGAD7} {
				d, err := scales.Lookup(st)
				if err != nil {
					return err
				}
				defs = append(defs, d)
			}
			return PrintResult(cmd, defs)
		},
	}
}

func newScalesSuggestCmd() *cobra.Command {
	var (
		userID    string
		emotion   string
		intensity int
		topic     string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Decide whether a scale should be offered for the given emotional state",
		Example: `  senda scales suggest --emotion tristeza --intensity 7
  senda scales suggest --emotion ansiedad --intensity 9 --topic EMOCIONAL`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			suggestion, err := cliCtx.Scales.ShouldAdminister(cmd.Context(), userID,
				scales.EmotionalAnalysis{MainEmotion: emotion, Intensity: intensity}, topic)
			if err != nil {
				return err
			}
			if suggestion == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "no scale suggested")
				return nil
			}
			return PrintResult(cmd, suggestion)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "cli", "user identifier for the cooldown check")
	cmd.Flags().StringVar(&emotion, "emotion", "", "dominant emotion (tristeza, ansiedad, miedo)")
	cmd.Flags().IntVar(&intensity, "intensity", 0, "emotional intensity (0-10)")
	cmd.Flags().StringVar(&topic, "topic", "", "contextual topic classification")
	_ = cmd.MarkFlagRequired("emotion")
	return cmd
}

func newScalesAutoCmd() *cobra.Command {
	var (
		scaleType string
		history   []string
	)

	cmd := &cobra.Command{
		Use:   "auto [mensaje...]",
		Short: "Auto-score a scale from free text",
		Example: `  senda scales auto --scale phq9 "me siento triste todos los días"
  senda scales auto --scale gad7 --history "no puedo relajarme" "estoy muy nerviosa"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			content := strings.Join(args, " ")
			if strings.TrimSpace(content) == "" {
				return fmt.Errorf("no message provided")
			}

			res, err := cliCtx.Scales.AutoComplete(scaleType, scales.Input{
				Content:       content,
				RecentHistory: history,
			})
			if err != nil {
				return err
			}
			return PrintResult(cmd, res)
		},
	}

	cmd.Flags().StringVar(&scaleType, "scale", scales.TypePHQ9, "scale type (phq9, gad7)")
	cmd.Flags().StringArrayVar(&history, "history", nil, "recent history message (repeatable)")
	return cmd
}

func newScalesScoreCmd() *cobra.Command {
	var scaleType string

	cmd := &cobra.Command{
		Use:   "score item=score [item=score...]",
		Short: "Validate and interpret a manual scale submission",
		Example: `  senda scales score --scale phq9 phq9_1=2 phq9_2=3 phq9_3=1 \
    phq9_4=0 phq9_5=2 phq9_6=1 phq9_7=0 phq9_8=0 phq9_9=0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			submission := make(map[string]int, len(args))
			for _, arg := range args {
				parts := strings.SplitN(arg, "=", 2)
				if len(parts) != 2 {
					return fmt.Errorf("invalid item %q; expected item=score", arg)
				}
				score, convErr := strconv.Atoi(parts[1])
				if convErr != nil {
					return fmt.Errorf("invalid score in %q: %v", arg, convErr)
				}
				submission[parts[0]] = score
			}

			res, err := cliCtx.Scales.Score(scaleType, submission)
			if err != nil {
				return err
			}
			return PrintResult(cmd, res)
		},
	}

	cmd.Flags().StringVar(&scaleType, "scale", scales.TypePHQ9, "scale type (phq9, gad7)")
	return cmd
}
