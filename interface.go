//////////////////////////////////////////////////////
// interface.go
// bot facade: the single entry point external front-ends call
// grounded on interface.go's Run/engine-facade role, minus the UCI/XBoard
// wire protocol itself (graphical and wire-protocol front-ends are out of
// scope here); the root-level two-worker fan-out is grounded on
// frankkopp-FrankyGo's and bluebear94-odnocam's use of golang.org/x/sync/errgroup
//////////////////////////////////////////////////////

package threesus

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// BotConfig configures a Bot. Depth and Horizon have the same meaning as
// SearchConfig's (the bot itself performs the first MAX ply, so the
// underlying Search only ever searches Depth-1 further plies). Logger
// defaults to NopLogger when nil.
type BotConfig struct {
	Depth     int
	Horizon   int
	Evaluator Evaluator
	Logger    Logger
}

// Bot is the facade front-ends call: given a packed board, deck counter and
// next-card hint, it fans the four root directions out across two worker
// goroutines and picks the best.
type Bot struct {
	cfg    BotConfig
	search *Search
}

// NewBot validates cfg and constructs a Bot. Invalid configuration is a
// programmer error reported synchronously.
//
// The delegate Search shares cfg's Depth and Horizon unchanged: the bot's
// own root-level direction choice is the first MAX ply, and the chance
// node that immediately follows it (evaluated inside Search.EvaluateMove)
// is depthFromRoot == 0 regardless of which layer happens to run it, so
// Horizon's "depth already descended from the root" comparison needs no
// offset here.
func NewBot(cfg BotConfig) (*Bot, error) {
	full := SearchConfig{Depth: cfg.Depth, Horizon: cfg.Horizon, Evaluator: cfg.Evaluator}
	if err := full.validate(); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = NopLogger{}
	}
	search, err := NewSearch(full)
	if err != nil {
		return nil, err
	}
	return &Bot{cfg: cfg, search: search}, nil
}

// rootResult is one worker's best direction among the subset of
// directions it was assigned.
type rootResult struct {
	dir      Direction
	quality  float32
	found    bool
}

// GetNextMove returns the best shift direction for the given position, or
// found=false if no direction changes the board (game over).
func (bot *Bot) GetNextMove(b Board, deck DeckCounter, hint NextCardHint) (dir Direction, found bool) {
	dir, found, _ = bot.GetNextMoveWithStats(b, deck, hint)
	return dir, found
}

// GetNextMoveWithStats is GetNextMove plus the number of evaluator calls
// performed, for diagnostic logging.
func (bot *Bot) GetNextMoveWithStats(b Board, deck DeckCounter, hint NextCardHint) (dir Direction, found bool, stats Stats) {
	bot.cfg.Logger.BeginMove(bot.cfg)

	remainingDepth := bot.cfg.Depth - 1
	if remainingDepth < 0 {
		remainingDepth = 0
	}

	var evalsA, evalsB uint64
	var resA, resB rootResult

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		resA = bot.evaluateDirections(b, deck, hint, remainingDepth, []Direction{Left, Right}, &evalsA)
		return nil
	})
	g.Go(func() error {
		resB = bot.evaluateDirections(b, deck, hint, remainingDepth, []Direction{Up, Down}, &evalsB)
		return nil
	})
	_ = g.Wait()

	stats.Evaluations = evalsA + evalsB

	best := mergeRootResults(resA, resB)
	bot.cfg.Logger.EndMove(stats)
	bot.cfg.Logger.PrintMove(best.dir, best.quality, best.found)
	return best.dir, best.found, stats
}

// evaluateDirections runs bot.search.EvaluateMove for each direction in
// dirs (in order), returning the best among them. dirs is always a
// two-element slice drawn from directionOrder, so iterating it in order
// already respects the global tie-break order.
func (bot *Bot) evaluateDirections(b Board, deck DeckCounter, hint NextCardHint, remainingDepth int, dirs []Direction, evaluations *uint64) rootResult {
	var best rootResult
	for _, d := range dirs {
		q, ok := bot.search.EvaluateMove(b, deck, hint, d, remainingDepth, evaluations)
		if !ok {
			continue
		}
		if !best.found || q > best.quality {
			best = rootResult{dir: d, quality: q, found: true}
		}
	}
	return best
}

// mergeRootResults combines the {Left,Right} worker's result with the
// {Up,Down} worker's result, preserving the fixed tie-break order Left,
// Right, Up, Down: a lies entirely before b in that order, so a wins ties.
func mergeRootResults(a, b rootResult) rootResult {
	if !a.found {
		return b
	}
	if !b.found {
		return a
	}
	if a.quality >= b.quality {
		return a
	}
	return b
}

// Description returns a human-readable "depth/horizon/evaluator" string
// for diagnostic logging.
func (bot *Bot) Description() string {
	return fmt.Sprintf("%d/%d/%s", bot.cfg.Depth, bot.cfg.Horizon, bot.cfg.Evaluator.Name())
}
