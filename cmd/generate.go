package cmd

import (
	"fmt"

	"github.com/lintang-b-s/bipartite-matching/pkg"
	"github.com/lintang-b-s/bipartite-matching/pkg/datastructure"
	"github.com/lintang-b-s/bipartite-matching/pkg/generator"
	"github.com/spf13/cobra"
)

var generateConfig generator.RandomBipartiteConfig

var generateCmd = &cobra.Command{
	Use:   "generate <output_file>",
	Short: "Write a random bipartite graph file (.bz2 output is compressed)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, err := generator.NewRandomBipartite(generateConfig)
		if err != nil {
			return err
		}
		if err := datastructure.WriteBipartiteGraph(args[0], graph); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Graph %s with %d+%d vertices and %d edge(s)\n",
			args[0], graph.NumberOfV1(), graph.NumberOfV2(), graph.NumberOfEdges())
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateConfig.V1, "v1", 10, "number of v1 vertices")
	generateCmd.Flags().IntVar(&generateConfig.V2, "v2", 10, "number of v2 vertices")
	generateCmd.Flags().Float64VarP(&generateConfig.EdgeProbability, "probability", "p", pkg.DEFAULT_EDGE_PROBABILITY, "probability of each v1-v2 pair being an edge")
	generateCmd.Flags().Uint64Var(&generateConfig.Seed, "seed", 1, "random seed")
	generateCmd.Flags().BoolVar(&generateConfig.PlantMatching, "plant", false, "plant a matching of size min(v1, v2)")
}
