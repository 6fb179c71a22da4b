package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gilchrisn/louvain-engine/pkg/graph"
	"github.com/gilchrisn/louvain-engine/pkg/louvain"
	"github.com/gilchrisn/louvain-engine/pkg/parser"
)

func main() {
	input := flag.String("input", "", "input graph file")
	format := flag.String("format", "mtx", "input format: mtx or edgelist")
	output := flag.String("output", "", "membership output file (TSV), stdout summary only if empty")
	resolution := flag.Float64("resolution", 1.0, "resolution parameter")
	tolerance := flag.Float64("tolerance", 0.0, "local-moving convergence tolerance")
	passTolerance := flag.Float64("pass-tolerance", 0.0, "minimum modularity gain per pass")
	declineFactor := flag.Float64("tolerance-decline", 1.0, "tolerance multiplier between passes")
	maxIterations := flag.Int("max-iterations", 500, "sweeps per local-moving phase")
	maxPasses := flag.Int("max-passes", 500, "aggregation passes")
	repeat := flag.Int("repeat", 1, "number of full solver re-runs (timing)")
	verbose := flag.Bool("verbose", false, "enable per-sweep progress logging")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	g, err := loadGraph(*input, *format)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load graph")
	}
	log.Info().
		Str("input", *input).
		Int("span", g.Span()).
		Int("vertices", g.Order()).
		Float64("total_weight", g.TotalWeight()/2).
		Msg("Graph loaded")

	cfg := louvain.NewConfig()
	cfg.Set("algorithm.resolution", *resolution)
	cfg.Set("algorithm.tolerance", *tolerance)
	cfg.Set("algorithm.pass_tolerance", *passTolerance)
	cfg.Set("algorithm.tolerance_decline_factor", *declineFactor)
	cfg.Set("algorithm.max_iterations", *maxIterations)
	cfg.Set("algorithm.max_passes", *maxPasses)
	cfg.Set("algorithm.repeat", *repeat)
	if *verbose {
		cfg.Set("logging.level", "debug")
		cfg.Set("logging.enable_progress", true)
	}

	result, err := louvain.Run(g, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Clustering failed")
	}

	log.Info().
		Int("passes", result.Passes).
		Int("iterations", result.Iterations).
		Float64("modularity", result.Modularity).
		Int64("runtime_ms", result.RuntimeMS).
		Msg("Clustering completed")

	if *output != "" {
		if err := writeMembership(*output, g, result.Membership); err != nil {
			log.Fatal().Err(err).Msg("Failed to write membership")
		}
		log.Info().Str("output", *output).Msg("Membership written")
	}
}

func loadGraph(path, format string) (*graph.Graph, error) {
	switch format {
	case "mtx":
		return parser.LoadMTX(path)
	case "edgelist":
		return parser.LoadEdgeList(path)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func writeMembership(path string, g *graph.Graph, membership []int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	var werr error
	g.ForEachVertexKey(func(u int) {
		if werr == nil {
			_, werr = fmt.Fprintf(w, "%d\t%d\n", u, membership[u])
		}
	})
	if werr != nil {
		return fmt.Errorf("failed to write membership: %w", werr)
	}
	return w.Flush()
}
