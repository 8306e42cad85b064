package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ajroetker/hwypi/hwy/contrib/montecarlo"
)

const envPrefix = "HWYPI"

// Flag and config keys.
const (
	keyThreads = "threads"
	keyMode    = "mode"
	keySamples = "samples"
	keyChunk   = "chunk"
	keySeeds   = "seeds"
	keyFormat  = "format"
	keyVerbose = "verbose"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "hwypi [threads [mode]]",
		Short: "Monte-Carlo π estimator.",
		Long: `Monte-Carlo π estimator.
Every thread samples points in the unit square with its own generator and
counts those inside the quarter circle. For example:
  hwypi 8 vectorized --samples 1000000000
  HWYPI_MODE=naive hwypi --threads 4`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(v, args)
			if err != nil {
				return err
			}
			return runEstimate(cmd, opts)
		},
	}

	defaults := montecarlo.DefaultConfig()
	flags := cmd.Flags()
	flags.StringP(keyThreads, "t", strconv.Itoa(defaults.Threads), "number of worker threads")
	flags.StringP(keyMode, "m", defaults.Mode.String(), `sampling mode: "naive" or "vectorized"`)
	flags.IntP(keySamples, "n", defaults.SamplesPerThread, "sample pairs per thread")
	flags.Int(keyChunk, defaults.ChunkPairs, "pairs generated per buffer refill (vectorized mode)")
	flags.StringSlice(keySeeds, nil, "one seed per thread (default: OS entropy)")
	flags.String(keyFormat, formatAuto, `output format: "auto", "text" or "plain"`)
	flags.BoolP(keyVerbose, "v", false, "log per-worker progress to stderr")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hwypi.yaml)")

	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	cmd.AddCommand(newCPUInfoCmd())
	return cmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			// No home directory: run on flags and env only.
			return nil
		}
		v.AddConfigPath(home)
		v.SetConfigName(".hwypi")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// options is the resolved command line.
type options struct {
	config  montecarlo.Config
	format  string
	verbose bool
}

// loadOptions merges flags, env, config file and positional arguments
// (threads, then mode) into a validated Config.
func loadOptions(v *viper.Viper, args []string) (options, error) {
	threadsArg := v.GetString(keyThreads)
	modeArg := v.GetString(keyMode)
	if len(args) > 0 {
		threadsArg = args[0]
	}
	if len(args) > 1 {
		modeArg = args[1]
	}

	threads, err := strconv.Atoi(strings.TrimSpace(threadsArg))
	if err != nil {
		return options{}, fmt.Errorf("%w: cannot parse %q", montecarlo.ErrInvalidThreads, threadsArg)
	}
	mode, err := montecarlo.ParseMode(modeArg)
	if err != nil {
		return options{}, err
	}

	cfg := montecarlo.Config{
		Threads:          threads,
		Mode:             mode,
		SamplesPerThread: v.GetInt(keySamples),
		ChunkPairs:       v.GetInt(keyChunk),
	}
	// GetStringSlice also accepts a space-separated HWYPI_SEEDS.
	for _, s := range v.GetStringSlice(keySeeds) {
		seed, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
		if err != nil {
			return options{}, fmt.Errorf("invalid seed %q: %w", s, err)
		}
		cfg.Seeds = append(cfg.Seeds, uint32(seed))
	}
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}

	format := strings.ToLower(v.GetString(keyFormat))
	switch format {
	case formatAuto, formatText, formatPlain:
	default:
		return options{}, fmt.Errorf("unknown format %q: want %q, %q or %q", format, formatAuto, formatText, formatPlain)
	}

	return options{config: cfg, format: format, verbose: v.GetBool(keyVerbose)}, nil
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
