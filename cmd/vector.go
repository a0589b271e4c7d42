package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/frenchdeck/internal/vector"
)

// vectorCmd represents the vector command group.
// Subcommands disable flag parsing so "-3,4" is read as a vector.
var vectorCmd = &cobra.Command{
	Use:   "vector",
	Short: "2D vector arithmetic",
	Long:  `Commands for 2D vectors written as x,y (for example 3,4 or -1.5,2).`,
}

var vectorAddCmd = &cobra.Command{
	Use:                "add X,Y X,Y",
	Short:              "Add two vectors",
	Example:            "  frenchdeck vector add 2,4 2,1",
	Args:               withHelp(cobra.ExactArgs(2)),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if wantsHelp(args) {
			return cmd.Help()
		}
		a, err := vector.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := vector.Parse(args[1])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), a.Add(b))
		return nil
	},
}

var vectorScaleCmd = &cobra.Command{
	Use:                "scale X,Y K",
	Short:              "Multiply a vector by a scalar",
	Example:            "  frenchdeck vector scale 3,4 3",
	Args:               withHelp(cobra.ExactArgs(2)),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if wantsHelp(args) {
			return cmd.Help()
		}
		v, err := vector.Parse(args[0])
		if err != nil {
			return err
		}
		k, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid scalar %q: %v", args[1], err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), v.Scale(k))
		return nil
	},
}

var vectorAbsCmd = &cobra.Command{
	Use:                "abs X,Y",
	Short:              "Print the magnitude of a vector",
	Example:            "  frenchdeck vector abs 3,4",
	Args:               withHelp(cobra.ExactArgs(1)),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if wantsHelp(args) {
			return cmd.Help()
		}
		v, err := vector.Parse(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v.Magnitude(), 'f', -1, 64))
		return nil
	},
}

var vectorBoolCmd = &cobra.Command{
	Use:                "bool X,Y",
	Short:              "Report whether a vector is non-zero",
	Example:            "  frenchdeck vector bool 0,0",
	Args:               withHelp(cobra.ExactArgs(1)),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if wantsHelp(args) {
			return cmd.Help()
		}
		v, err := vector.Parse(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), v.Bool())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(vectorCmd)
	vectorCmd.AddCommand(vectorAddCmd)
	vectorCmd.AddCommand(vectorScaleCmd)
	vectorCmd.AddCommand(vectorAbsCmd)
	vectorCmd.AddCommand(vectorBoolCmd)
}
