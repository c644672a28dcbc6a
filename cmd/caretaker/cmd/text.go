package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/caretaker/foundation/utils/stringx"
)

func newReplaceCmd() *cobra.Command {
	var runes bool

	cmd := &cobra.Command{
		Use:   "replace <text> <old> <new>",
		Short: "Replace every occurrence of old with new",
		Long: `Replace every non-overlapping occurrence of old with new.

Replacement text is never re-scanned, so new may contain old. An empty old
leaves the text unchanged. With --rune, old and new must be single characters.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, old, repl := args[0], args[1], args[2]

			var result string
			if runes {
				o, err := parseRune(old)
				if err != nil {
					return err
				}
				n, err := parseRune(repl)
				if err != nil {
					return err
				}
				result = stringx.ReplaceAllRune(text, o, n)
			} else {
				result = stringx.ReplaceAll(text, old, repl)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().BoolVar(&runes, "rune", false, "replace single characters")
	return cmd
}

func newMatchCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "match <text> [candidate...]",
		Short: "Report whether text equals any candidate, ignoring case",
		Long: `Report whether text equals any candidate, ignoring case under the
configured locale (--locale, the config file, or the process locale).
Without candidates the answer is false.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matched := stringx.MatchAnyIn(e.tag, args[0], args[1:]...)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(matched))
			return err
		},
	}
}
