package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/lintang-b-s/bipartite-matching/pkg"
	"github.com/lintang-b-s/bipartite-matching/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bimatch <input_path>",
	Short: "Maximum cardinality bipartite matching (Hopcroft-Karp)",
	Long: `bimatch reads <input_path>.gr, computes a maximum cardinality matching with the
Hopcroft-Karp algorithm and writes it to <input_path>_2.sol.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Usage()
		}

		log, err := logger.New()
		if err != nil {
			return err
		}
		defer log.Sync()

		result, err := solve(args[0], loadSolveOptions(), log)
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), result)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (toml, yaml or json)")
	rootCmd.PersistentFlags().Bool("debug", false, "verify the matching after solving")
	rootCmd.PersistentFlags().String("input-ext", pkg.GRAPH_FILE_EXT, "graph file extension appended to <input_path>, use .gr.bz2 for compressed graphs")
	rootCmd.PersistentFlags().String("solution-suffix", pkg.SOLUTION_FILE_SUFFIX, "suffix appended to <input_path> for the solution file")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("input-ext", rootCmd.PersistentFlags().Lookup("input-ext"))
	viper.BindPFlag("solution-suffix", rootCmd.PersistentFlags().Lookup("solution-suffix"))

	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(generateCmd)
}

func initConfig() {
	viper.SetEnvPrefix("BIMATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "reading config %s: %v\n", cfgFile, err)
	}
}
