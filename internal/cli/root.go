// Package cli provides the command-line interface for Tonal.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tonal-dev/tonal/internal/colour"
	"github.com/tonal-dev/tonal/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tonal",
	Short: "WCAG contrast checking and accessible colour ramps",
	Long: `Tonal computes WCAG contrast ratios, picks readable foreground colours,
and derives accessible colour ramps for UI states (normal, hover,
pressed, disabled) from a single base colour.

All results are deterministic: the same inputs always produce the same
colours, so tonal is safe to use in build pipelines and design tooling.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// NewRootCmd returns the configured root command. Called by main.main().
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("no-colour", false, "disable ANSI colour output")

	// Accept American spellings for the colour flags.
	rootCmd.PersistentFlags().SetNormalizeFunc(normaliseFlagName)

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(rampCmd)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if noColour, _ := cmd.Flags().GetBool("no-colour"); noColour {
			colour.DisableColourOutput = true
		}
	}
}

// normaliseFlagName maps "color" spellings onto the canonical "colour"
// flag names.
func normaliseFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "no-color":
		name = "no-colour"
	}
	return pflag.NormalizedName(name)
}

// newLogger builds the command logger, honouring the --verbose flag.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Warn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tonal",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
