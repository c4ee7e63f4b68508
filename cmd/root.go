// Package cmd provides the command-line interface of the optimizer.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/razeh/sketchucam-gcode-optimizer/gcode"
	"github.com/razeh/sketchucam-gcode-optimizer/optimize"
)

const rootLongDescription = `Optimize G-code produced by the SketchUCam post-processor.

The optimizer removes adjacent duplicate commands, collapses exactly
collinear move runs into their endpoints, and detects traversals that
retrace previously cut space. A profitable retrace is replaced by a retract
to safe height and a reposition; the replaced commands are preserved as
comments so the output can be audited against the input.

The optimized program is written to stdout unless --output names a file.
The safe height must be set above every clamp and fixture on the table.`

// rootCmd represents the base command. Flags are attached in init, after
// the viper defaults in config.go are in place.
var rootCmd = baseRootCmd()

func init() {
	configureRootFlags(rootCmd)
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)
	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "sketchucam-gcode-optimizer <program.nc>",
		Short:        "SketchUCam G-code optimizer",
		Long:         rootLongDescription,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().Float64(safeHeightFlagName, viper.GetFloat64(safeHeightFlagName),
		"retract height for inserted safe moves; must clear all fixtures")
	bindFlagToConfig(cmd.Flags().Lookup(safeHeightFlagName), safeHeightFlagName)

	cmd.Flags().Int(precisionFlagName, viper.GetInt(precisionFlagName),
		"decimal precision for synthesized moves")
	bindFlagToConfig(cmd.Flags().Lookup(precisionFlagName), precisionFlagName)

	cmd.Flags().StringP(outputFlagName, "o", viper.GetString(outputFlagName),
		"write the optimized program to a file instead of stdout")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputFlagName)

	cmd.Flags().Bool(statsFlagName, viper.GetBool(statsFlagName),
		"print a per-pass summary table to stderr")
	bindFlagToConfig(cmd.Flags().Lookup(statsFlagName), statsFlagName)

	cmd.Flags().BoolP(verboseFlagName, "v", viper.GetBool(verboseFlagName),
		"log at debug level")
	bindFlagToConfig(cmd.Flags().Lookup(verboseFlagName), verboseFlagName)

	cmd.Flags().Bool(noOptFlagName, viper.GetBool(noOptFlagName),
		"disable all optimization")
	bindFlagToConfig(cmd.Flags().Lookup(noOptFlagName), noOptFlagName)

	cmd.Flags().Bool(optDedupFlagName, viper.GetBool(optDedupFlagName),
		"remove adjacent duplicate commands")
	bindFlagToConfig(cmd.Flags().Lookup(optDedupFlagName), optDedupFlagName)

	cmd.Flags().Bool(optCollinearFlagName, viper.GetBool(optCollinearFlagName),
		"collapse collinear move runs")
	bindFlagToConfig(cmd.Flags().Lookup(optCollinearFlagName), optCollinearFlagName)

	cmd.Flags().Bool(optRepeatFlagName, viper.GetBool(optRepeatFlagName),
		"replace repeated traversals with safe moves")
	bindFlagToConfig(cmd.Flags().Lookup(optRepeatFlagName), optRepeatFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values
// feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func run(cmd *cobra.Command, path string) error {
	configureLogger(viper.GetBool(verboseFlagName))

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open program: %w", err)
	}
	defer f.Close()

	program, err := gcode.Parse(f)
	if err != nil {
		return err
	}
	slog.Info("parsed program", "path", path, "commands", len(program))

	program, results, err := optimize.Run(program, buildPasses()...)
	if err != nil {
		return err
	}

	if viper.GetBool(statsFlagName) {
		fmt.Fprint(cmd.ErrOrStderr(), renderStatsTable(results))
	}

	if dest := viper.GetString(outputFlagName); dest != "" {
		if err := os.WriteFile(dest, []byte(program.Export()+"\n"), 0644); err != nil {
			return fmt.Errorf("write program: %w", err)
		}
		return nil
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), program.Export())
	return err
}

func buildPasses() []optimize.Pass {
	if viper.GetBool(noOptFlagName) {
		return nil
	}

	var passes []optimize.Pass
	if viper.GetBool(optDedupFlagName) {
		passes = append(passes, optimize.Dedup{})
	}
	if viper.GetBool(optCollinearFlagName) {
		passes = append(passes, optimize.Collinear{})
	}
	if viper.GetBool(optRepeatFlagName) {
		passes = append(passes, optimize.Repeat{
			SafeHeight: viper.GetFloat64(safeHeightFlagName),
			Precision:  viper.GetInt(precisionFlagName),
		})
	}
	return passes
}

// Execute runs the root command. Called once from main.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
