// Package cmd implements the mreflow command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mreflow/internal/config"
	"mreflow/internal/gitutil"
	"mreflow/internal/reflow"
	"mreflow/internal/version"
)

var pathColor = color.New(color.FgCyan)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mreflow [flags] [path ...]",
	Short: "Reflow % comment blocks in MATLAB source files",
	Long: `mreflow rewraps consecutive % comment lines in MATLAB (*.m) files to a fixed
line width, preserving indentation, and rewrites each file in place. It is
meant to run as a pre-commit hook: any error fails the commit.

Arguments may be files (processed as given) or directories (searched
recursively for .m files).`,
	Args: cobra.ArbitraryArgs,
	RunE: runReflow,
}

func init() {
	rootCmd.Flags().Int("line-length", 78, "target wrap width for comment text")
	rootCmd.Flags().Bool("ignore-indented", true, "pass through comments with inner indentation of two or more spaces")
	rootCmd.Flags().Bool("alternate-capital-handling", false, "start a new comment block at lines beginning with a capital letter")
	rootCmd.Flags().Bool("staged", false, "also process .m files staged in the git index")
	rootCmd.Flags().Bool("quiet", false, "suppress per-file output")

	rootCmd.Version = version.Version
	rootCmd.AddCommand(versionCmd)
}

func runReflow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	paths := args
	staged, err := cmd.Flags().GetBool("staged")
	if err != nil {
		return err
	}
	if staged {
		stagedFiles, err := gitutil.StagedMatlabFiles(cmd.Context())
		if err != nil {
			return err
		}
		paths = append(paths, stagedFiles...)
	}

	results, err := reflow.ProcessPaths(paths, opts)
	if err != nil {
		return err
	}

	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}
	if !quiet {
		for _, res := range results {
			if res.Changed {
				fmt.Fprintf(cmd.OutOrStdout(), "reflowed %s\n", pathColor.Sprint(res.Path))
			}
		}
	}
	return nil
}

// resolveOptions layers built-in defaults, then any .mreflow.toml found from
// the working directory upward, then flags set explicitly on the command
// line.
func resolveOptions(cmd *cobra.Command) (reflow.Options, error) {
	opts := reflow.DefaultOptions()

	cfgPath, found, err := config.Find(".")
	if err != nil {
		return opts, err
	}
	if found {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return opts, err
		}
		opts = cfg.Apply(opts)
	}

	flags := cmd.Flags()
	if flags.Changed("line-length") {
		if opts.LineLength, err = flags.GetInt("line-length"); err != nil {
			return opts, err
		}
	}
	if flags.Changed("ignore-indented") {
		if opts.IgnoreIndented, err = flags.GetBool("ignore-indented"); err != nil {
			return opts, err
		}
	}
	if flags.Changed("alternate-capital-handling") {
		if opts.AlternateCapitalHandling, err = flags.GetBool("alternate-capital-handling"); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
