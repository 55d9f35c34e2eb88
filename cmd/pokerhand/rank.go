package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/pokerhand/cmd/pokerhand/shared"
	"github.com/lox/pokerhand/internal/batch"
	"github.com/lox/pokerhand/internal/fileutil"
	"github.com/lox/pokerhand/internal/tui"
)

// RankCmd ranks one hand from the arguments or many from a file.
type RankCmd struct {
	Cards []string `arg:"" optional:"" help:"Card tokens, e.g. As Ac 7d 10h 3s"`
	File  string   `short:"f" help:"Rank one hand per line from this file ('-' for stdin)"`
	Out   string   `short:"o" help:"Write JSON results to this file"`
	JSON  bool     `help:"Print results as JSON"`
}

func (c *RankCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	var results []batch.Result
	switch {
	case c.File != "" && len(c.Cards) > 0:
		return errors.New("pass either cards or --file, not both")

	case c.File != "":
		ctx, cancel := shared.SetupSignalHandler(logger)
		defer cancel()

		rd, closeFn, err := openInput(c.File)
		if err != nil {
			return err
		}
		defer closeFn()

		ranker := batch.NewRanker(cfg.Batch.Workers, logger)
		results, err = ranker.RankReader(ctx, rd)
		if err != nil {
			return err
		}
		logger.Info("Ranked hands", "count", len(results), "workers", ranker.Workers())

	default:
		results = []batch.Result{batch.Rank(strings.Join(c.Cards, " "))}
	}

	if c.Out != "" {
		if err := fileutil.WriteJSONAtomic(c.Out, results, 0o644); err != nil {
			return err
		}
		logger.Info("Wrote results", "file", c.Out)
	}

	if c.JSON {
		if c.File == "" {
			return encodeJSON(g.Stdout, results[0])
		}
		return encodeJSON(g.Stdout, results)
	}

	return printResults(g.Stdout, results, c.File != "")
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func openInput(name string) (io.Reader, func(), error) {
	if name == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open hands file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// printResults writes one line per result. With showHand each line is
// prefixed by the hand itself.
func printResults(w io.Writer, results []batch.Result, showHand bool) error {
	width := 0
	for _, r := range results {
		width = max(width, len(r.Hand))
	}

	for _, r := range results {
		text := r.Category
		if !r.Valid() {
			text = r.Error
		}
		line := tui.RenderResult(text, r.Valid())
		if showHand {
			line = fmt.Sprintf("%-*s  %s", width, r.Hand, line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
