package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/caretaker/foundation/core/log"
	"github.com/msto63/caretaker/foundation/utils/enumx"
)

func newEnumCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "enum <index> [name...]",
		Short: "Resolve an enumeration index, clamping out-of-range values",
		Long: `Resolve index against the given member names and print the member.

An out-of-range index is clamped into range and a warning is logged. Without
names the log severities (critical ... debug) are used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			var members enumx.Members = enumx.Of[log.Severity](len(log.AllSeverities()))
			if len(args) > 1 {
				members = enumx.Names(args[1:])
			}

			name, err := enumx.Resolve(e.logger, members, index)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
			return err
		},
	}
}
