package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cterror "github.com/msto63/caretaker/foundation/core/error"
	"github.com/msto63/caretaker/foundation/utils/slicex"
	"github.com/msto63/caretaker/foundation/utils/stringx"
)

// missingPart is printed in place of a second part that does not exist
const missingPart = "<none>"

type splitOptions struct {
	list bool
	sep  string
}

// items splits text into list items; an empty text is an empty list
func (o *splitOptions) items(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, o.sep)
}

func (o *splitOptions) join(items []string) string {
	return strings.Join(items, o.sep)
}

func newSplitCmd(e *env) *cobra.Command {
	opts := &splitOptions{}

	splitCmd := &cobra.Command{
		Use:   "split",
		Short: "Split a string (by rune position) or a --list of items",
		Long: `Split a string by rune position, or a list of items with --list.

Single splits drop the element at the split position and print the two parts.
With --list, a position that does not exist prints <none> as second part.`,
	}

	splitCmd.PersistentFlags().BoolVar(&opts.list, "list", false, "treat the text as a list of items separated by --sep")
	splitCmd.PersistentFlags().StringVar(&opts.sep, "sep", ",", "item separator used with --list")

	splitCmd.AddCommand(
		newSplitIndexCmd(opts),
		newSplitFirstCmd(opts),
		newSplitLastCmd(opts),
		newSplitIndexesCmd(opts),
	)

	return splitCmd
}

func newSplitIndexCmd(opts *splitOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "index <text> <position>",
		Short: "Split around the element at a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[1])
			if err != nil {
				return err
			}

			if opts.list {
				head, tail, ok := slicex.SplitAt(opts.items(args[0]), i)
				return writePair(cmd.OutOrStdout(), opts.join(head), opts.join(tail), ok)
			}

			head, tail := stringx.SplitByIndex(args[0], i)
			return writePair(cmd.OutOrStdout(), head, tail, true)
		},
	}
}

func newSplitFirstCmd(opts *splitOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "first <text> <separator>",
		Short: "Split around the first occurrence of a separator",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				head, tail, ok := slicex.SplitByFirst(opts.items(args[0]), args[1])
				return writePair(cmd.OutOrStdout(), opts.join(head), opts.join(tail), ok)
			}

			r, err := parseRune(args[1])
			if err != nil {
				return err
			}
			head, tail := stringx.SplitByFirstRune(args[0], r)
			return writePair(cmd.OutOrStdout(), head, tail, true)
		},
	}
}

func newSplitLastCmd(opts *splitOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "last <text> <separator>",
		Short: "Split around the last occurrence of a separator",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				head, tail, ok := slicex.SplitByLast(opts.items(args[0]), args[1])
				return writePair(cmd.OutOrStdout(), opts.join(head), opts.join(tail), ok)
			}

			r, err := parseRune(args[1])
			if err != nil {
				return err
			}
			head, tail := stringx.SplitByLastRune(args[0], r)
			return writePair(cmd.OutOrStdout(), head, tail, true)
		},
	}
}

func newSplitIndexesCmd(opts *splitOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "indexes <text> <position>...",
		Short: "Cut into pieces at ascending positions, dropping nothing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indexes := make([]int, 0, len(args)-1)
			for _, arg := range args[1:] {
				i, err := parseIndex(arg)
				if err != nil {
					return err
				}
				indexes = append(indexes, i)
			}

			var pieces []string
			if opts.list {
				for _, piece := range slicex.SplitAtIndexes(opts.items(args[0]), indexes...) {
					pieces = append(pieces, opts.join(piece))
				}
			} else {
				pieces = stringx.SplitByIndexes(args[0], indexes...)
			}

			for _, piece := range pieces {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.Quote(piece)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// writePair prints head and tail quoted on separate lines. A tail that does
// not exist is printed as <none>.
func writePair(w io.Writer, head, tail string, ok bool) error {
	second := missingPart
	if ok {
		second = strconv.Quote(tail)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", strconv.Quote(head), second)
	return err
}

func parseIndex(value string) (int, error) {
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, cterror.Wrap(err, fmt.Sprintf("invalid position %q", value)).
			WithCode(cterror.CodeInvalidInput)
	}
	return i, nil
}

// parseRune requires value to hold exactly one rune
func parseRune(value string) (rune, error) {
	runes := []rune(value)
	if len(runes) != 1 {
		return 0, cterror.New(fmt.Sprintf("separator must be a single character, got %q", value)).
			WithCode(cterror.CodeInvalidInput)
	}
	return runes[0], nil
}
