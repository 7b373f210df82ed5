package cmd

import (
	"fmt"
	"io"

	"github.com/lintang-b-s/bipartite-matching/pkg/datastructure"
	"github.com/lintang-b-s/bipartite-matching/pkg/matching"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type solveOptions struct {
	inputExt       string
	solutionSuffix string
	debug          bool
}

type solveResult struct {
	source       string
	solution     string
	matchingSize int
	phases       int
}

func loadSolveOptions() solveOptions {
	return solveOptions{
		inputExt:       viper.GetString("input-ext"),
		solutionSuffix: viper.GetString("solution-suffix"),
		debug:          viper.GetBool("debug"),
	}
}

// solve reads <base><inputExt>, matches it and writes <base><solutionSuffix>. Nothing is
// written when reading or matching fails.
func solve(base string, opts solveOptions, log *zap.Logger) (solveResult, error) {
	result := solveResult{
		source:   base + opts.inputExt,
		solution: base + opts.solutionSuffix,
	}

	graph, err := datastructure.ReadBipartiteGraph(result.source)
	if err != nil {
		return result, err
	}
	log.Info("graph loaded",
		zap.String("file", result.source),
		zap.Int("v1", graph.NumberOfV1()),
		zap.Int("v2", graph.NumberOfV2()),
		zap.Int("edges", graph.NumberOfEdges()))

	v1Set, v2Set := matching.DefaultPartition(graph)
	m, phases, err := matching.NewHopcroftKarp(graph, log, opts.debug).FindMaximumMatching(v1Set, v2Set)
	if err != nil {
		return result, err
	}

	if err := matching.WriteSolution(result.solution, graph.NumberOfV1(), m); err != nil {
		return result, err
	}

	result.matchingSize = m.Size()
	result.phases = phases
	log.Info("solution written",
		zap.String("file", result.solution),
		zap.Int("matchingSize", result.matchingSize),
		zap.Int("phases", result.phases))
	return result, nil
}

func printSummary(w io.Writer, r solveResult) {
	fmt.Fprintf(w, "File %s, solution %s\n", r.source, r.solution)
	fmt.Fprintf(w, "Matching with %d edge(s)\n", r.matchingSize)
	fmt.Fprintf(w, "Using %d iteration(s)\n", r.phases)
}
