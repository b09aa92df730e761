package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tockdev/tock/internal/config"
	"github.com/tockdev/tock/internal/tui"
	"github.com/tockdev/tock/internal/validate"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile = "~/.config/tock/config.yaml"
	verbose    bool

	rootCmd = &cobra.Command{
		Use:   "tock [SECONDS]",
		Short: "A full-screen terminal countdown timer with a progress bar and big digits.",
		Long: `A full-screen terminal countdown timer. Counts down the given number of
seconds to zero, rendering a proportional progress bar and a large MM:SS
readout that adapt to the terminal size. With no argument (or an invalid
one) the configured default duration is used, 25 minutes out of the box.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.WarnLevel)
			}

			cfg, err := config.NewOrExisting(configFile)
			if err != nil {
				logrus.Fatalf("Unable to open or create config: %v", err)
			}
			logrus.WithField("install_uuid", cfg.Data.InstallUUID).Debug("config loaded")

			if err := tui.Run(resolveSeconds(args, cfg)); err != nil {
				logrus.Fatalf("countdown failed: %v", err)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetDefaultCmd)
	configCmd.AddCommand(configClearCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// resolveSeconds normalizes the duration argument. Absent, non-numeric, or
// non-positive input falls back to the configured default with a warning, so
// the countdown only ever sees a validated positive integer.
func resolveSeconds(args []string, cfg *config.Config) int {
	if len(args) == 0 {
		return cfg.Default()
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || validate.Var(n, "gt=0") != nil {
		logrus.Warnf("Invalid duration %q; using default of %d seconds.", args[0], cfg.Default())
		return cfg.Default()
	}
	return n
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage countdown preferences",
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current default duration (if any)",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := config.NewOrExisting(configFile)
		if err != nil {
			logrus.Fatal(err)
		}
		if c.Data.DefaultSeconds == 0 {
			fmt.Fprintf(os.Stdout, "No default duration set; using built-in %d seconds\n", config.DefaultSeconds)
			return
		}
		fmt.Fprintf(os.Stdout, "%d\n", c.Data.DefaultSeconds)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configSetDefaultCmd = &cobra.Command{
	Use:   "set-default [SECONDS]",
	Short: "Set and persist the default countdown duration",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := config.NewOrExisting(configFile)
		if err != nil {
			logrus.Fatal(err)
		}
		n, convErr := strconv.Atoi(args[0])
		if convErr != nil || validate.Var(n, "gt=0") != nil {
			logrus.Fatalf("Invalid duration: %q. Expected a positive number of seconds (example: 1500).", args[0])
		}
		c.Data.DefaultSeconds = n
		if err := c.Save(); err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(os.Stdout, "Default duration set to %d seconds\n", c.Data.DefaultSeconds)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the persisted default duration",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := config.NewOrExisting(configFile)
		if err != nil {
			logrus.Fatal(err)
		}
		c.Data.DefaultSeconds = 0
		if err := c.Save(); err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintln(os.Stdout, "Default duration cleared")
	},
}

func main() {
	Execute()
}
