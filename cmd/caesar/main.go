// Command caesar is a thin driver over the coloring core: it builds a
// graph from a named topology factory, runs the Tait colorer, and
// prints a histogram and a correctness check. It is the one place in
// the repository that parses arguments, configures logging, and
// writes to stdout; the core itself never imports cobra or touches
// os.Args.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/r-aax/caesar-sub000/builder"
	"github.com/r-aax/caesar-sub000/core"
	"github.com/r-aax/caesar-sub000/history"
	"github.com/r-aax/caesar-sub000/render"
	"github.com/r-aax/caesar-sub000/tait"
)

var (
	topology     string
	size         int
	seed         int64
	dumpHistory  bool
	emitNetworkX string
	verbose      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caesar",
		Short: "Build a cubic graph and compute its Tait edge 3-coloring",
		Example: `  caesar --topology cube
  caesar --topology prism --size 6 --emit-networkx cube.py
  caesar --topology tetrahedron --dump-history`,
		RunE: runCaesar,
	}

	cmd.Flags().StringVar(&topology, "topology", "cube", "topology: empty, trivial, edgeless, complete, cyclic, prism, tetrahedron, cube")
	cmd.Flags().IntVar(&size, "size", 4, "size parameter n/k for the topologies that take one")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, reserved for topologies that need one (none currently do)")
	cmd.Flags().BoolVar(&dumpHistory, "dump-history", false, "log the reduction step count computed on a scratch clone")
	cmd.Flags().StringVar(&emitNetworkX, "emit-networkx", "", "write a networkx/matplotlib Python script describing the colored graph to this path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	return cmd
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func runCaesar(cmd *cobra.Command, args []string) error {
	log := newLogger()
	_ = seed // reserved: no shipped topology factory is stochastic yet

	g, err := buildTopology(topology, size)
	if err != nil {
		return fmt.Errorf("caesar: %w", err)
	}
	log.Info("graph built", "topology", topology, "size", size, "order", g.Order(), "edges", g.Size())

	if dumpHistory {
		clone := g.Clone()
		h := history.New()
		steps, err := clone.FullReduce(h)
		if err != nil {
			return fmt.Errorf("caesar: dump-history: %w", err)
		}
		log.Info("reduction history", "steps", steps)
	}

	start := time.Now()
	if err := tait.Color(g); err != nil {
		return fmt.Errorf("caesar: %w", err)
	}
	elapsed := time.Since(start)

	correct := g.IsEdgesColoringCorrect()
	histogram := g.FillEdgesColorsHistogram()
	log.Info("coloring complete",
		"elapsed", elapsed,
		"is_edges_coloring_correct", correct,
		"histogram", histogram,
	)

	if emitNetworkX != "" {
		f, err := os.Create(emitNetworkX)
		if err != nil {
			return fmt.Errorf("caesar: emit-networkx: %w", err)
		}
		defer f.Close()
		if err := render.WriteNetworkX(f, g); err != nil {
			return fmt.Errorf("caesar: emit-networkx: %w", err)
		}
		log.Info("networkx script written", "path", emitNetworkX)
	}

	if !correct {
		return fmt.Errorf("caesar: produced coloring failed is_edges_coloring_correct")
	}
	return nil
}

func buildTopology(name string, n int) (*core.Graph, error) {
	switch name {
	case "empty":
		return builder.Build(builder.Empty())
	case "trivial":
		return builder.Build(builder.Trivial())
	case "edgeless":
		return builder.Build(builder.Edgeless(n))
	case "complete":
		return builder.Build(builder.Complete(n))
	case "cyclic":
		return builder.Build(builder.Cyclic(n))
	case "prism":
		return builder.Build(builder.Prism(n))
	case "tetrahedron":
		return builder.Build(builder.Tetrahedron())
	case "cube":
		return builder.Build(builder.Cube())
	default:
		return nil, fmt.Errorf("unknown topology %q", name)
	}
}
