// Command taxicab computes the Manhattan distance of a turn-by-turn instruction walk.
//
// The instruction string is taken from the first argument,
// or from the first line of the standard input when no argument is given:
//
//	taxicab "R2, L3"
//	echo "R2, L3" | taxicab
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/adamluzsi/seq"
	"github.com/adamluzsi/seq/taxicab"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   `taxicab [instructions]`,
		Short: `compute the taxicab distance of a turn-by-turn instruction walk`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			state, err := taxicab.Walk(taxicab.Parse(input), taxicab.Start)
			if err != nil {
				return err
			}
			if verbose {
				log.Info(`walk finished`,
					`x`, state.Position.X,
					`y`, state.Position.Y,
					`dx`, state.Heading.DX,
					`dy`, state.Heading.DY)
			}
			cmd.Println(taxicab.Distance(state.Position))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, `verbose`, `v`, false, `log the final state of the walk`)
	cmd.SetOut(os.Stdout)
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if 0 < len(args) {
		return args[0], nil
	}
	line, err := seq.Lines(cmd.InOrStdin()).First()
	if err != nil {
		return ``, fmt.Errorf(`taxicab: no instructions given: %w`, err)
	}
	return line, nil
}
