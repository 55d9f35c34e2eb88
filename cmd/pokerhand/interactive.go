package main

import (
	"github.com/lox/pokerhand/cmd/pokerhand/shared"
	"github.com/lox/pokerhand/internal/tui"
	"github.com/lox/pokerhand/poker"
)

// InteractiveCmd opens the terminal UI.
type InteractiveCmd struct {
	Hand string `arg:"" optional:"" help:"Initial hand (defaults to a sample pair)"`
}

func (c *InteractiveCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	hand := c.Hand
	if hand == "" {
		hand = poker.DefaultHand
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	return tui.Run(ctx, logger, hand, cfg.Samples)
}
