// Command mazegen generates a maze and prints it as text, YAML or JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"gopkg.in/yaml.v3"
)

// document is what the yaml and json formats write.
type document struct {
	Config   maze.Config         `json:"config" yaml:"config"`
	Maze     game.Snapshot       `json:"maze" yaml:"maze"`
	Solution []game.CellPosition `json:"solution,omitempty" yaml:"solution,omitempty,flow"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stdout)
	kind := fs.String("kind", maze.KindRectangular, "Maze kind: rectangular, radial or gap-barrier")
	rows := fs.Int("rows", 8, "Rows (rectangular)")
	cols := fs.Int("cols", 8, "Columns (rectangular)")
	rings := fs.Int("rings", 5, "Rings (radial kinds)")
	seed := fs.Int64("seed", 0, "Seed for random generation (0 picks one)")
	policy := fs.String("policy", string(maze.GapOpposite), "Gap policy (gap-barrier): opposite or weave")
	format := fs.String("format", "text", "Output format: text, yaml or json")
	solve := fs.Bool("solve", false, "Include the shortest path from entry to goal")
	outFile := fs.String("out", "", "Output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := maze.Config{
		Kind:      *kind,
		Rows:      *rows,
		Cols:      *cols,
		Rings:     *rings,
		Seed:      *seed,
		GapPolicy: maze.GapPolicy(*policy),
	}
	if cfg.Kind != maze.KindRectangular {
		cfg.Rows, cfg.Cols = 0, 0
	} else {
		cfg.Rings = 0
	}
	if cfg.Kind != maze.KindGapBarrier {
		cfg.GapPolicy = ""
	}

	m, err := maze.New(cfg)
	if err != nil {
		return err
	}
	cfg.Seed = m.Seed()

	var solution []game.CellPosition
	if *solve {
		solution = maze.Solve(m)
	}

	out := stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return write(out, *format, document{Config: cfg, Maze: m.Snapshot(), Solution: solution}, m)
}

func write(w io.Writer, format string, doc document, m game.Maze) error {
	switch format {
	case "text":
		if _, err := fmt.Fprintf(w, "%s maze, seed %d\n%s", m.Kind(), m.Seed(), m.String()); err != nil {
			return err
		}
		if doc.Solution != nil {
			_, err := fmt.Fprintf(w, "solution: %d moves\n", len(doc.Solution)-1)
			return err
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
