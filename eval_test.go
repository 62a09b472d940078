package threesus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroEvaluator(t *testing.T) {
	b := rowBoard([4][4]int32{{1, 2, 3, 6}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	assert.EqualValues(t, 0, ZeroEvaluator{}.Evaluate(b))
}

func TestTotalScoreEvaluatorMatchesBoard(t *testing.T) {
	b := rowBoard([4][4]int32{{1, 2, 3, 6}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	assert.EqualValues(t, b.TotalScore(), TotalScoreEvaluator{}.Evaluate(b))
}

// EmptySpaces on all-empty and fully-occupied boards.
func TestEmptySpacesScenario(t *testing.T) {
	var empty Board
	assert.EqualValues(t, 16, EmptySpacesEvaluator{}.Evaluate(empty))

	full := rowBoard([4][4]int32{{1, 3, 1, 3}, {3, 1, 3, 1}, {1, 3, 1, 3}, {3, 1, 3, 1}})
	assert.EqualValues(t, 0, EmptySpacesEvaluator{}.Evaluate(full))
}

func TestEvaluatorsArePure(t *testing.T) {
	b := rowBoard([4][4]int32{{1, 2, 3, 6}, {0, 12, 0, 0}, {0, 0, 24, 0}, {1, 2, 0, 0}})
	evaluators := []Evaluator{
		ZeroEvaluator{},
		TotalScoreEvaluator{},
		EmptySpacesEvaluator{},
		OpennessEvaluator{},
		OpennessMatthewEvaluator{},
	}
	for _, e := range evaluators {
		assert.Equal(t, e.Evaluate(b), e.Evaluate(b), e.Name())
	}
}

func TestOpennessRewardsEmptySpace(t *testing.T) {
	var empty Board
	full := rowBoard([4][4]int32{{1, 3, 1, 3}, {3, 1, 3, 1}, {1, 3, 1, 3}, {3, 1, 3, 1}})
	assert.Greater(t, OpennessEvaluator{}.Evaluate(empty), OpennessEvaluator{}.Evaluate(full))
}

func TestOpennessMergeableNeighborBonus(t *testing.T) {
	withMerge := rowBoard([4][4]int32{{1, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	noMerge := rowBoard([4][4]int32{{1, 3, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	assert.Greater(t, OpennessEvaluator{}.Evaluate(withMerge), OpennessEvaluator{}.Evaluate(noMerge))
}

func TestOpennessMatthewEdgeBonusForMax(t *testing.T) {
	// maxIndex 5 (value 12) > 4, sitting in a corner should score higher
	// than the same board with the max card moved to the center.
	corner := rowBoard([4][4]int32{{12, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	center := rowBoard([4][4]int32{{0, 0, 0, 0}, {0, 12, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	assert.Greater(t, OpennessMatthewEvaluator{}.Evaluate(corner), OpennessMatthewEvaluator{}.Evaluate(center))
}

func TestBlendCombinesEvaluators(t *testing.T) {
	b := rowBoard([4][4]int32{{1, 2, 3, 6}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	bl := Blend{A: TotalScoreEvaluator{}, B: EmptySpacesEvaluator{}, WeightA: 0.5}
	want := 0.5*TotalScoreEvaluator{}.Evaluate(b) + 0.5*EmptySpacesEvaluator{}.Evaluate(b)
	assert.EqualValues(t, want, bl.Evaluate(b))
	assert.Contains(t, bl.Name(), "TotalScore")
	assert.Contains(t, bl.Name(), "EmptySpaces")
}
