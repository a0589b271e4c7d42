package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/deck"
	"github.com/arcanaland/frenchdeck/internal/display"
	"github.com/arcanaland/frenchdeck/internal/vector"
)

// demoCmd walks through every deck and vector operation
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the deck and vector operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRenderer()
		if err != nil {
			return err
		}

		seed := rand.Uint64()
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetUint64("seed")
		}

		out := cmd.OutOrStdout()
		if err := runDeckDemo(out, r, rand.New(rand.NewPCG(seed, seed))); err != nil {
			return err
		}
		runVectorDemo(out, r)
		return nil
	},
}

func runDeckDemo(out io.Writer, r *display.Renderer, rng *rand.Rand) error {
	fmt.Fprintln(out, r.Heading("A French deck"))
	fmt.Fprintln(out, card.Card{Rank: "7", Suit: "diamonds"})

	d := deck.New()
	fmt.Fprintln(out, d.Len())

	first, err := d.At(0)
	if err != nil {
		return err
	}
	last, err := d.At(-1)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, first)
	fmt.Fprintln(out, last)

	for i := 0; i < 3; i++ {
		fmt.Fprintln(out, d.Choice(rng))
	}

	three := 3
	top, err := d.Slice(deck.Bounds{Stop: &three})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, top)

	start, step := 12, 13
	aces, err := d.Slice(deck.Bounds{Start: &start, Step: &step})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, aces)
	for _, line := range r.Highlight(d.Cards(), aces) {
		fmt.Fprintln(out, line)
	}

	fmt.Fprintln(out, r.Heading("Forward"))
	for _, line := range r.Row(d.Cards()) {
		fmt.Fprintln(out, line)
	}

	fmt.Fprintln(out, r.Heading("Reversed"))
	var reversed []card.Card
	for _, c := range d.Backward() {
		reversed = append(reversed, c)
	}
	for _, line := range r.Row(reversed) {
		fmt.Fprintln(out, line)
	}

	fmt.Fprintln(out, r.Heading("Membership"))
	fmt.Fprintln(out, d.Contains(card.Card{Rank: "7", Suit: "hearts"}))
	fmt.Fprintln(out, d.Contains(card.Card{Rank: "11", Suit: "hearts"}))

	fmt.Fprintln(out, r.Heading("Spades high"))
	for _, line := range r.Row(d.SortBy(card.SpadesHigh)) {
		fmt.Fprintln(out, line)
	}

	return nil
}

func runVectorDemo(out io.Writer, r *display.Renderer) {
	fmt.Fprintln(out, r.Heading("Vectors"))

	v1, v2 := vector.New(2, 4), vector.New(2, 1)
	fmt.Fprintf(out, "%s + %s = %s\n", v1, v2, v1.Add(v2))

	v := vector.New(3, 4)
	fmt.Fprintf(out, "abs(%s) = %g\n", v, v.Magnitude())
	fmt.Fprintf(out, "%s * 3 = %s\n", v, v.Scale(3))
	fmt.Fprintf(out, "abs(%s * 3) = %g\n", v, v.Scale(3).Magnitude())
	fmt.Fprintf(out, "bool(%s) = %t\n", vector.New(0, 0), vector.New(0, 0).Bool())
	fmt.Fprintf(out, "bool(%s) = %t\n", vector.New(1, 0), vector.New(1, 0).Bool())
}

func init() {
	RootCmd.AddCommand(demoCmd)
	demoCmd.Flags().Uint64("seed", 0, "Seed for the random draws")
}
