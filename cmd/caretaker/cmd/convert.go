package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cterror "github.com/msto63/caretaker/foundation/core/error"
	"github.com/msto63/caretaker/foundation/utils/timex"
)

func newConvertCmd() *cobra.Command {
	var asDuration bool

	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between time units",
		Long: `Convert a value between time units.

Units: ms, sec, min, hour, day, week (long and plural names are accepted).
With --duration the converted amount is printed as a Go duration.`,
		Example: `  caretaker convert 2 hour sec
  caretaker convert 90 min hour --duration`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return cterror.Wrap(err, fmt.Sprintf("invalid value %q", args[0])).
					WithCode(cterror.CodeInvalidInput)
			}
			from, err := timex.ParseUnit(args[1])
			if err != nil {
				return err
			}
			to, err := timex.ParseUnit(args[2])
			if err != nil {
				return err
			}

			result := timex.Convert(value, from, to)
			if asDuration {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), timex.ToDuration(result, to))
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(result, 'g', -1, 64))
			return err
		},
	}

	cmd.Flags().BoolVar(&asDuration, "duration", false, "print the result as a duration")
	return cmd
}

func newNowCmd() *cobra.Command {
	var millis bool

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the local clock time (HH:MM:SS.mmm)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if millis {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), timex.NowMillis())
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), timex.CurrentTime())
			return err
		},
	}

	cmd.Flags().BoolVar(&millis, "millis", false, "print UTC Unix milliseconds instead")
	return cmd
}
