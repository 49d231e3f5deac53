package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"lazyseq/internal/log"
	"lazyseq/internal/pipeline"
)

const (
	configF     = "config"
	sourceF     = "source"
	rangeStartF = "range-start"
	rangeStopF  = "range-stop"
	rangeStepF  = "range-step"
	stepsF      = "steps"
	outputF     = "output"
	verbosityF  = "verbosity"

	defaultOutput    = "list"
	defaultVerbosity = "info"

	configFlagUsage = "The yaml configuration file."
	sourceUsage     = "Comma separated source values."
	rangeStartUsage = "First value of a generated source."
	rangeStopUsage  = "Exclusive bound of a generated source."
	rangeStepUsage  = "Stride of a generated source. Zero disables the range source."
	stepsUsage      = "Inline YAML list of steps, overriding the steps of the configuration file. " +
		"Example: '[{op: where, fn: odd}, {op: take, n: 3}]'"
	outputUsage    = "Output format: list, table or json."
	verbosityUsage = "Log level: debug, info, warn or error."
)

// flag name -> config key
var configKeys = map[string]string{
	sourceF:     "source",
	rangeStartF: "range.start",
	rangeStopF:  "range.stop",
	rangeStepF:  "range.step",
	outputF:     "output",
	verbosityF:  "verbosity",
}

func NewCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "linq",
		Short:         "Evaluate lazy query chains over integer sequences.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(RunCmd())
	return rootCmd
}

func RunCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "run [flags]",
		Short: "Build a query chain and print its elements",
		Long: `This command builds a chain of select, where, take, take_while and skip steps
over a source sequence and prints every element the chain yields.`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().StringVar(&cfgFile, configF, "", configFlagUsage)
	cmd.Flags().IntSlice(sourceF, nil, sourceUsage)
	cmd.Flags().Int(rangeStartF, 0, rangeStartUsage)
	cmd.Flags().Int(rangeStopF, 0, rangeStopUsage)
	cmd.Flags().Int(rangeStepF, 0, rangeStepUsage)
	cmd.Flags().String(stepsF, "", stepsUsage)
	cmd.Flags().String(outputF, defaultOutput, outputUsage)
	cmd.Flags().String(verbosityF, defaultVerbosity, verbosityUsage)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return errors.Wrap(err, "read config")
			}
		}
		if err := bindFlags(v, cmd.Flags()); err != nil {
			return err
		}

		if cmd.Flags().Changed(stepsF) {
			inline, err := cmd.Flags().GetString(stepsF)
			if err != nil {
				return err
			}
			steps, err := pipeline.ParseSteps(inline)
			if err != nil {
				return err
			}
			v.Set("steps", steps)
		}

		cfg, err := pipeline.LoadConfig(v)
		if err != nil {
			return err
		}

		logger, err := log.NewLogger(cfg.Verbosity)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		values, err := pipeline.Run(cfg, logger)
		if err != nil {
			return err
		}
		return pipeline.Write(cmd.OutOrStdout(), cfg.Output, values)
	}

	return cmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for flag, key := range configKeys {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return errors.Wrapf(err, "bind flag %q", flag)
		}
	}
	return nil
}
