package threesus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBotValidatesConfig(t *testing.T) {
	_, err := NewBot(BotConfig{Depth: 0, Horizon: 1, Evaluator: ZeroEvaluator{}})
	assert.Error(t, err)

	_, err = NewBot(BotConfig{Depth: 2, Horizon: 3, Evaluator: ZeroEvaluator{}})
	assert.Error(t, err)

	_, err = NewBot(BotConfig{Depth: 2, Horizon: 1, Evaluator: nil})
	assert.Error(t, err)

	bot, err := NewBot(BotConfig{Depth: 2, Horizon: 1, Evaluator: TotalScoreEvaluator{}})
	require.NoError(t, err)
	assert.NotNil(t, bot)
}

func TestNewBotDefaultsLoggerToNop(t *testing.T) {
	bot, err := NewBot(BotConfig{Depth: 1, Horizon: 1, Evaluator: TotalScoreEvaluator{}})
	require.NoError(t, err)
	assert.IsType(t, NopLogger{}, bot.cfg.Logger)
}

// A fully tiled board offers no legal move in any direction.
func TestGetNextMoveNoLegalMove(t *testing.T) {
	bot, err := NewBot(BotConfig{Depth: 2, Horizon: 1, Evaluator: TotalScoreEvaluator{}})
	require.NoError(t, err)

	b := rowBoard([4][4]int32{{1, 3, 1, 3}, {3, 1, 3, 1}, {1, 3, 1, 3}, {3, 1, 3, 1}})
	_, found := bot.GetNextMove(b, NewDeckCounter(), HintOne)
	assert.False(t, found)
}

func TestGetNextMoveReturnsLegalDirection(t *testing.T) {
	bot, err := NewBot(BotConfig{Depth: 2, Horizon: 1, Evaluator: EmptySpacesEvaluator{}})
	require.NoError(t, err)

	b := rowBoard([4][4]int32{{1, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	dir, found := bot.GetNextMove(b, NewDeckCounter(), HintOne)
	require.True(t, found)

	after, _ := Shift(b, dir)
	assert.True(t, Moved(b, after), "the chosen direction must actually change the board")
}

func TestGetNextMoveWithStatsReportsEvaluations(t *testing.T) {
	bot, err := NewBot(BotConfig{Depth: 2, Horizon: 2, Evaluator: EmptySpacesEvaluator{}})
	require.NoError(t, err)

	b := rowBoard([4][4]int32{{1, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	_, found, stats := bot.GetNextMoveWithStats(b, NewDeckCounter(), HintOne)
	assert.True(t, found)
	assert.Greater(t, stats.Evaluations, uint64(0))
}

// Only Left and Right can move this position; the fixed tie-break order
// Left, Right, Up, Down must prefer Left when both score equally under a
// symmetric evaluator.
func TestGetNextMoveTieBreakOrder(t *testing.T) {
	bot, err := NewBot(BotConfig{Depth: 1, Horizon: 1, Evaluator: ZeroEvaluator{}})
	require.NoError(t, err)

	b := rowBoard([4][4]int32{
		{1, 2, 1, 2},
		{1, 2, 1, 2},
		{1, 2, 1, 2},
		{1, 2, 1, 2},
	})
	dir, found := bot.GetNextMove(b, NewDeckCounter(), HintOne)
	require.True(t, found)
	assert.Equal(t, Left, dir)
}

func TestDescriptionFormat(t *testing.T) {
	bot, err := NewBot(BotConfig{Depth: 3, Horizon: 2, Evaluator: OpennessEvaluator{}})
	require.NoError(t, err)
	assert.Equal(t, "3/2/Openness", bot.Description())
}

func TestMergeRootResultsPrefersFirstOnTie(t *testing.T) {
	a := rootResult{dir: Left, quality: 5, found: true}
	b := rootResult{dir: Up, quality: 5, found: true}
	assert.Equal(t, Left, mergeRootResults(a, b).dir)
}

func TestMergeRootResultsFallsBackWhenOneMissing(t *testing.T) {
	a := rootResult{found: false}
	b := rootResult{dir: Down, quality: 1, found: true}
	assert.Equal(t, Down, mergeRootResults(a, b).dir)
	assert.Equal(t, Down, mergeRootResults(b, a).dir)
}
