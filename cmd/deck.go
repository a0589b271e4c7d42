package cmd

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Query the 52-card French deck",
	Long: `Commands for reading the French deck. Cards are ordered by suit
(spades, diamonds, clubs, hearts) and then by rank (2 through A).`,
}

// deckLenCmd represents the deck len command
var deckLenCmd = &cobra.Command{
	Use:   "len",
	Short: "Print the number of cards in the deck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), deck.New().Len())
		return nil
	},
}

// deckAtCmd represents the deck at command.
// Flag parsing is disabled so negative indices are not read as flags.
var deckAtCmd = &cobra.Command{
	Use:                "at INDEX",
	Short:              "Print the card at INDEX (negative counts from the end)",
	Example:            "  frenchdeck deck at 0\n  frenchdeck deck at -1",
	Args:               withHelp(cobra.ExactArgs(1)),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if wantsHelp(args) {
			return cmd.Help()
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q: %v", args[0], err)
		}

		c, err := deck.New().At(index)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), c)
		return nil
	},
}

// deckSliceCmd represents the deck slice command
var deckSliceCmd = &cobra.Command{
	Use:                "slice START:STOP[:STEP]",
	Short:              "Print a range of cards",
	Example:            "  frenchdeck deck slice :3\n  frenchdeck deck slice 12::13\n  frenchdeck deck slice -3:",
	Args:               withHelp(cobra.ExactArgs(1)),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if wantsHelp(args) {
			return cmd.Help()
		}
		bounds, err := deck.ParseBounds(args[0])
		if err != nil {
			return err
		}

		d := deck.New()
		cards, err := d.Slice(bounds)
		if err != nil {
			return err
		}

		for _, c := range cards {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

// deckContainsCmd represents the deck contains command
var deckContainsCmd = &cobra.Command{
	Use:     "contains CARD",
	Short:   "Report whether CARD is in the deck",
	Example: "  frenchdeck deck contains \"7 hearts\"\n  frenchdeck deck contains 7h\n  frenchdeck deck contains 11h",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), deck.New().Contains(c))
		return nil
	},
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards in the deck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reverse, _ := cmd.Flags().GetBool("reverse")
		sortKey, _ := cmd.Flags().GetString("sort")
		compact, _ := cmd.Flags().GetBool("compact")

		d := deck.New()

		var cards []card.Card
		switch sortKey {
		case "", "none":
			cards = d.Cards()
		case "spades-high":
			cards = d.SortBy(card.SpadesHigh)
		default:
			return fmt.Errorf("unknown sort key: %s (supported: none, spades-high)", sortKey)
		}

		if reverse {
			for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
				cards[i], cards[j] = cards[j], cards[i]
			}
		}

		out := cmd.OutOrStdout()
		if compact {
			r, err := newRenderer()
			if err != nil {
				return err
			}
			for _, line := range r.Row(cards) {
				fmt.Fprintln(out, line)
			}
			return nil
		}

		for _, c := range cards {
			fmt.Fprintln(out, c)
		}
		return nil
	},
}

// deckChoiceCmd represents the deck choice command
var deckChoiceCmd = &cobra.Command{
	Use:   "choice",
	Short: "Draw random cards from the deck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("count")
		if n < 1 {
			return fmt.Errorf("count must be at least 1, got %d", n)
		}

		seed := rand.Uint64()
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetUint64("seed")
		}
		rng := rand.New(rand.NewPCG(seed, seed))

		d := deck.New()
		for i := 0; i < n; i++ {
			fmt.Fprintln(cmd.OutOrStdout(), d.Choice(rng))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckLenCmd)
	deckCmd.AddCommand(deckAtCmd)
	deckCmd.AddCommand(deckSliceCmd)
	deckCmd.AddCommand(deckContainsCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckChoiceCmd)

	deckListCmd.Flags().BoolP("reverse", "r", false, "List cards in reverse order")
	deckListCmd.Flags().StringP("sort", "s", "none", "Sort key: none or spades-high")
	deckListCmd.Flags().BoolP("compact", "c", false, "Print cards in colored rows")

	deckChoiceCmd.Flags().IntP("count", "n", 1, "Number of cards to draw (with replacement)")
	deckChoiceCmd.Flags().Uint64("seed", 0, "Seed for reproducible draws")
}
