package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/frenchdeck/internal/config"
	"github.com/arcanaland/frenchdeck/internal/display"
)

// noColor disables colored output regardless of the config file
var noColor bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "frenchdeck",
	Short: "Explore a French deck of cards and 2D vectors",
	Long: `Frenchdeck is a command-line tool for exploring a 52-card French deck
and simple 2D vector arithmetic.

The deck supports indexing (including negative indices), slicing,
membership tests, forward and reverse iteration, and spades-high sorting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// newRenderer loads the user's config and applies --no-color
func newRenderer() (*display.Renderer, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	r := display.NewRenderer(cfg)
	if noColor {
		r.Color = false
	}
	return r, nil
}

// withHelp lets -h and --help past the argument check of commands that
// disable flag parsing.
func withHelp(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if wantsHelp(args) {
			return nil
		}
		return validate(cmd, args)
	}
}

// wantsHelp reports whether args ask for help
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}
