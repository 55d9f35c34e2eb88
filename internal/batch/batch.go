// Package batch ranks many hands concurrently.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhand/poker"
)

// Result is the ranking of one input line. Exactly one of Category and Error
// is set.
type Result struct {
	Hand     string `json:"hand"`
	Category string `json:"category,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Valid reports whether the hand parsed successfully.
func (r Result) Valid() bool {
	return r.Error == ""
}

// Rank ranks a single hand.
func Rank(hand string) Result {
	category, err := poker.Classify(hand)
	if err != nil {
		return Result{Hand: hand, Error: poker.ErrorMessage(err)}
	}
	return Result{Hand: hand, Category: category.String()}
}

// Ranker ranks batches of hands with a bounded number of workers.
type Ranker struct {
	workers int
	logger  *log.Logger
}

// NewRanker creates a ranker. A non-positive workers value uses GOMAXPROCS.
func NewRanker(workers int, logger *log.Logger) *Ranker {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Ranker{
		workers: workers,
		logger:  logger.WithPrefix("batch"),
	}
}

// Workers returns the worker limit.
func (r *Ranker) Workers() int {
	return r.workers
}

// RankAll ranks every hand and returns results in input order. Invalid
// hands produce a Result with Error set; only context cancellation makes
// RankAll itself fail.
func (r *Ranker) RankAll(ctx context.Context, hands []string) ([]Result, error) {
	results := make([]Result, len(hands))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, hand := range hands {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Rank(hand)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait cancels gctx, so check the caller's context.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.logger.Debug("Ranked hands", "count", len(hands), "workers", r.workers)
	return results, nil
}

// RankReader ranks one hand per non-blank line read from rd.
func (r *Ranker) RankReader(ctx context.Context, rd io.Reader) ([]Result, error) {
	hands, err := ReadHands(rd)
	if err != nil {
		return nil, err
	}
	return r.RankAll(ctx, hands)
}

// ReadHands reads one hand per line, skipping blank lines and lines
// starting with '#'.
func ReadHands(rd io.Reader) ([]string, error) {
	var hands []string
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		hands = append(hands, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hands: %w", err)
	}
	return hands, nil
}
