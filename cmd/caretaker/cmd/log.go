package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	cterror "github.com/msto63/caretaker/foundation/core/error"
	"github.com/msto63/caretaker/foundation/core/log"
)

func newLogCmd(e *env) *cobra.Command {
	var (
		tee    string
		asNull bool
	)

	cmd := &cobra.Command{
		Use:   "log <severity> [message...]",
		Short: "Write a coloured log line",
		Long: `Write one log line at the given severity.

Severities: critical, error, warning, info, verbose, debug.
Without a message, warning and error print "Warning!" and "Error!".
With --tee the plain (uncoloured) line is also appended to a file.`,
		Example: `  caretaker log warning "disk almost full"
  caretaker --timestamp log info started --tee caretaker.log`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			severity, err := log.ParseSeverity(args[0])
			if err != nil {
				return cterror.Wrap(err, "invalid severity").WithCode(cterror.CodeInvalidInput)
			}

			if tee != "" {
				f, err := os.OpenFile(tee, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
				if err != nil {
					return cterror.Wrap(err, "failed to open tee file").
						WithCode(cterror.CodeInvalidInput).
						WithDetail("path", tee)
				}
				defer f.Close()

				e.logger.SetObserver(func(line string) {
					fmt.Fprintln(f, line)
				})
				defer e.logger.SetObserver(nil)
			}

			timestamp := e.cfg.Log.Timestamp
			switch {
			case asNull:
				e.logger.Log(nil, timestamp, severity)
			case len(args) == 1 && severity == log.SeverityWarning:
				e.logger.WarningT(nil, timestamp)
			case len(args) == 1 && severity == log.SeverityError:
				e.logger.ErrorT(nil, timestamp)
			default:
				e.logger.Log(strings.Join(args[1:], " "), timestamp, severity)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tee, "tee", "", "also append the plain line to this file")
	cmd.Flags().BoolVar(&asNull, "null", false, "log a nil message")
	return cmd
}

func newClearCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Blank the current console line and move to the previous one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.logger.ClearLine()
		},
	}
}
