package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arcanaland/frenchdeck/internal/deck"
)

// resetFlags restores every flag to its default so runs do not leak into each other
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetFlags(RootCmd)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)

	err := Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out)
	}
	return out
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestDeckLen(t *testing.T) {
	if out := mustRun(t, "deck", "len"); out != "52\n" {
		t.Fatalf("expected 52, got %q", out)
	}
}

func TestDeckAt(t *testing.T) {
	tests := map[string]string{
		"0":  "Card(rank='2', suit='spades')\n",
		"-1": "Card(rank='A', suit='hearts')\n",
		"13": "Card(rank='2', suit='diamonds')\n",
	}
	for index, want := range tests {
		if out := mustRun(t, "deck", "at", index); out != want {
			t.Fatalf("deck at %s: expected %q, got %q", index, want, out)
		}
	}
}

func TestDeckAtOutOfRange(t *testing.T) {
	_, err := run(t, "deck", "at", "52")
	if !errors.Is(err, deck.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}

	if _, err := run(t, "deck", "at", "one"); err == nil {
		t.Fatal("expected an error for a non-numeric index")
	}
}

func TestDeckSlice(t *testing.T) {
	out := lines(mustRun(t, "deck", "slice", "12::13"))
	want := []string{
		"Card(rank='A', suit='spades')",
		"Card(rank='A', suit='diamonds')",
		"Card(rank='A', suit='clubs')",
		"Card(rank='A', suit='hearts')",
	}
	if strings.Join(out, "|") != strings.Join(want, "|") {
		t.Fatalf("expected the four aces, got %q", out)
	}

	if out := lines(mustRun(t, "deck", "slice", "-2:")); len(out) != 2 {
		t.Fatalf("expected two cards, got %q", out)
	}

	if _, err := run(t, "deck", "slice", "::0"); !errors.Is(err, deck.ErrZeroStep) {
		t.Fatalf("expected ErrZeroStep, got %v", err)
	}
}

func TestDeckSliceMaxStep(t *testing.T) {
	out := mustRun(t, "deck", "slice", "51::9223372036854775807")
	if out != "Card(rank='A', suit='hearts')\n" {
		t.Fatalf("expected only the ace of hearts, got %q", out)
	}
}

func TestHelpWithoutFlagParsing(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"deck", "at", "--help"}, "Print the card at INDEX"},
		{[]string{"deck", "slice", "-h"}, "Print a range of cards"},
		{[]string{"vector", "add", "--help"}, "Add two vectors"},
		{[]string{"vector", "scale", "3,4", "-h"}, "Multiply a vector by a scalar"},
		{[]string{"vector", "abs", "--help"}, "Print the magnitude of a vector"},
		{[]string{"vector", "bool", "-h"}, "Report whether a vector is non-zero"},
	}
	for _, tt := range tests {
		out := mustRun(t, tt.args...)
		if !strings.Contains(out, tt.want) || !strings.Contains(out, "Usage:") {
			t.Fatalf("%v: expected help text, got %q", tt.args, out)
		}
	}

	// Negative numbers are still read as arguments
	if out := mustRun(t, "deck", "at", "-2"); out != "Card(rank='K', suit='hearts')\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDeckContains(t *testing.T) {
	if out := mustRun(t, "deck", "contains", "7 hearts"); out != "true\n" {
		t.Fatalf("expected true, got %q", out)
	}
	if out := mustRun(t, "deck", "contains", "11h"); out != "false\n" {
		t.Fatalf("expected false, got %q", out)
	}
	if _, err := run(t, "deck", "contains", "7x"); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestDeckList(t *testing.T) {
	forward := lines(mustRun(t, "deck", "ls"))
	if len(forward) != 52 {
		t.Fatalf("expected 52 lines, got %d", len(forward))
	}

	reversed := lines(mustRun(t, "deck", "ls", "--reverse"))
	for i := range forward {
		if forward[i] != reversed[51-i] {
			t.Fatalf("line %d: reverse listing does not mirror forward listing", i)
		}
	}

	// The previous --reverse must not leak into this run
	if again := lines(mustRun(t, "deck", "ls")); again[0] != forward[0] {
		t.Fatalf("expected %q first, got %q", forward[0], again[0])
	}
}

func TestDeckListSpadesHigh(t *testing.T) {
	sorted := lines(mustRun(t, "deck", "ls", "--sort", "spades-high"))
	if sorted[0] != "Card(rank='2', suit='clubs')" {
		t.Fatalf("unexpected first card %q", sorted[0])
	}
	if sorted[51] != "Card(rank='A', suit='spades')" {
		t.Fatalf("unexpected last card %q", sorted[51])
	}

	if _, err := run(t, "deck", "ls", "--sort", "bogus"); err == nil {
		t.Fatal("expected an error for an unknown sort key")
	}
}

func TestDeckListCompact(t *testing.T) {
	out := mustRun(t, "--no-color", "deck", "ls", "--compact")
	if !strings.HasPrefix(out, "2♠ 3♠ 4♠") {
		t.Fatalf("unexpected compact output %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("--no-color output contains escape codes")
	}
}

func TestDeckChoiceSeeded(t *testing.T) {
	a := mustRun(t, "deck", "choice", "-n", "3", "--seed", "42")
	b := mustRun(t, "deck", "choice", "-n", "3", "--seed", "42")
	if a != b {
		t.Fatalf("same seed gave different draws:\n%s\n%s", a, b)
	}
	if n := len(lines(a)); n != 3 {
		t.Fatalf("expected 3 cards, got %d", n)
	}

	if _, err := run(t, "deck", "choice", "-n", "0"); err == nil {
		t.Fatal("expected an error for count 0")
	}
}

func TestVectorCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"vector", "add", "2,4", "2,1"}, "Vector(4, 5)\n"},
		{[]string{"vector", "scale", "3,4", "3"}, "Vector(9, 12)\n"},
		{[]string{"vector", "abs", "3,4"}, "5\n"},
		{[]string{"vector", "abs", "9,12"}, "15\n"},
		{[]string{"vector", "bool", "0,0"}, "false\n"},
		{[]string{"vector", "bool", "1,0"}, "true\n"},
		{[]string{"vector", "add", "-1,-1", "1,1"}, "Vector(0, 0)\n"},
	}
	for _, tt := range tests {
		if out := mustRun(t, tt.args...); out != tt.want {
			t.Fatalf("%v: expected %q, got %q", tt.args, tt.want, out)
		}
	}

	if _, err := run(t, "vector", "abs", "three,4"); err == nil {
		t.Fatal("expected an error for a non-numeric vector")
	}
	if _, err := run(t, "vector", "scale", "3,4", "x"); err == nil {
		t.Fatal("expected an error for a non-numeric scalar")
	}
}

func TestValidate(t *testing.T) {
	out := mustRun(t, "validate")
	if !strings.Contains(out, "Deck is valid") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDemo(t *testing.T) {
	out := mustRun(t, "--no-color", "demo", "--seed", "1")
	for _, want := range []string{
		"Card(rank='7', suit='diamonds')",
		"52",
		"Card(rank='A', suit='hearts')",
		"Vector(2, 4) + Vector(2, 1) = Vector(4, 5)",
		"abs(Vector(3, 4)) = 5",
		"bool(Vector(0, 0)) = false",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("demo output is missing %q", want)
		}
	}
}

func TestConfigCommands(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetFlags(RootCmd)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	for _, args := range [][]string{
		{"config", "set-color", "off"},
		{"config", "set-symbols", "no"},
		{"config", "show"},
	} {
		RootCmd.SetArgs(args)
		if err := RootCmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}

	if !strings.Contains(out.String(), "color: false") || !strings.Contains(out.String(), "suit_symbols: false") {
		t.Fatalf("settings were not applied:\n%s", out.String())
	}

	RootCmd.SetArgs([]string{"config", "set-color", "maybe"})
	if err := RootCmd.Execute(); err == nil {
		t.Fatal("expected an error for an invalid switch value")
	}
}
