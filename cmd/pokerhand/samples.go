package main

import (
	"github.com/lox/pokerhand/cmd/pokerhand/shared"
	"github.com/lox/pokerhand/internal/batch"
)

// SamplesCmd prints every configured sample hand with its ranking.
type SamplesCmd struct {
	JSON bool `help:"Print results as JSON"`
}

func (c *SamplesCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	results, err := batch.NewRanker(cfg.Batch.Workers, logger).RankAll(ctx, cfg.Samples)
	if err != nil {
		return err
	}

	if c.JSON {
		return encodeJSON(g.Stdout, results)
	}
	return printResults(g.Stdout, results, true)
}
