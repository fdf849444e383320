package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	noLogConfig bool
	printOps    bool
	printVecs   bool
	maxPush     uint64
	popRatio    uint64
	randomCount uint64
	randomSeed  uint64
}

// every option is a flag and an environment variable; a set flag wins over
// the environment, the environment over the default
var options = []struct {
	key, flag, env string
	integer        bool
}{
	{"no_log_config", "no-log-config", "NO_LOG_CONFIG", false},
	{"print_ops", "print-ops", "PRINT_OPS", false},
	{"print_vecs", "print-vecs", "PRINT_VECS", false},
	{"max_push", "max-push", "MAX_PUSH", true},
	{"pop_ratio", "pop-ratio", "POP_RATIO", true},
	{"random_count", "random-count", "RANDOM_COUNT", true},
	{"random_seed", "random-seed", "RANDOM_SEED", true},
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suffbench",
		Short: "Benchmark and validate the suffix stack against a linear oracle",
		Long: `suffbench runs a fixed scenario suite against both the naive and the tree
stack, then a randomised stream of append/pop/suffix-check operations on
both side by side, comparing every observable result and accumulating
per-operation timings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.Bool("no-log-config", false, "don't log integer options as they are parsed")
	flags.Bool("print-ops", false, "print each operation performed")
	flags.Bool("print-vecs", false, "print the stack contents at each step")
	flags.Uint64("max-push", 1024, "the maximum number of elements to push at once")
	flags.Uint64("pop-ratio", 2, "pop counts drawn from [0, size] are divided by this")
	flags.Uint64("random-count", 1024, "number of random operations to run")
	flags.Uint64("random-seed", 0, "seed for the random number generator")

	return cmd
}

func loadConfig(flags *pflag.FlagSet) (*config, error) {
	v := viper.New()
	for _, opt := range options {
		if err := v.BindPFlag(opt.key, flags.Lookup(opt.flag)); err != nil {
			return nil, errors.Wrapf(err, "binding --%s", opt.flag)
		}
		if err := v.BindEnv(opt.key, opt.env); err != nil {
			return nil, errors.Wrapf(err, "binding %s", opt.env)
		}
	}

	cfg := &config{
		noLogConfig: v.GetBool("no_log_config"),
		printOps:    v.GetBool("print_ops"),
		printVecs:   v.GetBool("print_vecs"),
		maxPush:     v.GetUint64("max_push"),
		popRatio:    v.GetUint64("pop_ratio"),
		randomCount: v.GetUint64("random_count"),
		randomSeed:  v.GetUint64("random_seed"),
	}

	if !cfg.noLogConfig {
		for _, opt := range options {
			if opt.integer {
				fmt.Printf("%s=%d\n", opt.env, v.GetUint64(opt.key))
			}
		}
	}

	if cfg.popRatio == 0 {
		return nil, errors.New("pop ratio must be positive")
	}
	return cfg, nil
}
