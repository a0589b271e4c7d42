package cmd

import (
	"fmt"

	"github.com/arcanaland/frenchdeck/internal/deck"
	"github.com/arcanaland/frenchdeck/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the deck invariants",
	Long: `Validate builds the deck and checks that it holds exactly 52 distinct cards
in construction order, that negative indexing reaches the last card, and that
the spades-high key orders every card strictly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		results := validator.NewValidator(deck.New()).Validate()

		fmt.Fprintln(out, r.Heading("Validation Results:"))
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintln(out, "✅ Deck is valid.")
		} else {
			fmt.Fprintf(out, "❌ Deck has %d validation errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
