package cmd

import (
	"fmt"

	"github.com/lintang-b-s/bipartite-matching/pkg"
	"github.com/lintang-b-s/bipartite-matching/pkg/concurrent"
	"github.com/lintang-b-s/bipartite-matching/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

type batchResult struct {
	result solveResult
	err    error
}

var batchCmd = &cobra.Command{
	Use:   "batch <input_path>...",
	Short: "Solve several graph files, one matching per worker",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.New()
		if err != nil {
			return err
		}
		defer log.Sync()

		opts := loadSolveOptions()
		workers := viper.GetInt("workers")
		log.Sugar().Infof("solving %d graph(s) with %d worker(s)", len(args), workers)

		results := concurrent.Run(workers, args, func(base string) batchResult {
			r, err := solve(base, opts, log)
			return batchResult{result: r, err: err}
		}, log)

		var errs error
		for i, r := range results {
			if r.err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", args[i], r.err))
				continue
			}
			printSummary(cmd.OutOrStdout(), r.result)
		}
		return errs
	},
}

func init() {
	batchCmd.Flags().Int("workers", pkg.DEFAULT_BATCH_WORKERS, "number of graphs solved concurrently")
	viper.BindPFlag("workers", batchCmd.Flags().Lookup("workers"))
}
