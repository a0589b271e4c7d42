package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/frenchdeck/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change display preferences",
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Config file:", config.GetConfigFilePath())
		fmt.Fprintln(out, "color:", cfg.Color)
		fmt.Fprintln(out, "suit_symbols:", cfg.SuitSymbols)
		return nil
	},
}

var configSetColorCmd = &cobra.Command{
	Use:   "set-color on|off",
	Short: "Enable or disable colored output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := parseSwitch(args[0])
		if err != nil {
			return err
		}
		if err := config.SetColor(enabled); err != nil {
			return fmt.Errorf("error setting color: %v", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "color set to:", enabled)
		return nil
	},
}

var configSetSymbolsCmd = &cobra.Command{
	Use:   "set-symbols on|off",
	Short: "Show suits as symbols (on) or names (off)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := parseSwitch(args[0])
		if err != nil {
			return err
		}
		if err := config.SetSuitSymbols(enabled); err != nil {
			return fmt.Errorf("error setting suit symbols: %v", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "suit_symbols set to:", enabled)
		return nil
	},
}

// parseSwitch accepts on/off as well as anything strconv.ParseBool does
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
	return v, nil
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetColorCmd)
	configCmd.AddCommand(configSetSymbolsCmd)
}
