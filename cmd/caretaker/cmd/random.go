package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cterror "github.com/msto63/caretaker/foundation/core/error"
	"github.com/msto63/caretaker/foundation/utils/randx"
)

func newCoinCmd(e *env) *cobra.Command {
	var (
		chance float64
		count  int
	)

	cmd := &cobra.Command{
		Use:   "coin",
		Short: "Flip a coin that lands heads with the given chance",
		Example: `  caretaker coin
  caretaker --seed 42 coin --chance 0.9 --count 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if chance < 0 || chance > 1 {
				return cterror.New(fmt.Sprintf("chance must be within [0, 1], got %g", chance)).
					WithCode(cterror.CodeValueOutOfRange)
			}

			for range count {
				side := "tails"
				if randx.FlipCoin(e.src, chance) {
					side = "heads"
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), side); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&chance, "chance", 0.5, "probability of heads")
	cmd.Flags().IntVar(&count, "count", 1, "number of flips")
	return cmd
}

func newPickCmd(e *env) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "pick <item>...",
		Short: "Pick a random item (with replacement)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				e.logger.Warning("nothing to pick from")
				return nil
			}

			for range count {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), randx.Element(e.src, args)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "number of picks")
	return cmd
}
