//////////////////////////////////////////////////////
// eval.go
// board quality evaluators: pure functions (packed board -> score)
// grounded on search.go's Eval/Score blending (Eval.Feed, Eval.Merge)
//////////////////////////////////////////////////////

package threesus

// Evaluator is a pure, stateless, concurrency-safe board-quality function.
// Any type satisfying this is a valid search heuristic.
type Evaluator interface {
	Evaluate(b Board) float32
	Name() string
}

// ZeroEvaluator always returns 0. Baseline for tests.
type ZeroEvaluator struct{}

func (ZeroEvaluator) Evaluate(Board) float32 { return 0 }
func (ZeroEvaluator) Name() string           { return "Zero" }

// TotalScoreEvaluator returns the board's total end-of-game score.
type TotalScoreEvaluator struct{}

func (TotalScoreEvaluator) Evaluate(b Board) float32 { return float32(b.TotalScore()) }
func (TotalScoreEvaluator) Name() string             { return "TotalScore" }

// EmptySpacesEvaluator returns the count of empty cells.
type EmptySpacesEvaluator struct{}

func (EmptySpacesEvaluator) Evaluate(b Board) float32 { return float32(b.EmptyCount()) }
func (EmptySpacesEvaluator) Name() string             { return "EmptySpaces" }

// neighborOffsets are the up-to-four orthogonal neighbor directions.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// horizontallyTrapped reports whether (x,y) is boxed in on both the left
// and right by a wall or a larger non-mergeable neighbor (index >= 3 and
// strictly greater than the cell's own index).
func horizontallyTrapped(b Board, x, y int, self CardIndex) bool {
	left := x == 0 || isBlockingNeighbor(b.Get(x-1, y), self)
	right := x == 3 || isBlockingNeighbor(b.Get(x+1, y), self)
	return left && right
}

// verticallyTrapped is horizontallyTrapped's counterpart on the y axis.
func verticallyTrapped(b Board, x, y int, self CardIndex) bool {
	up := y == 0 || isBlockingNeighbor(b.Get(x, y-1), self)
	down := y == 3 || isBlockingNeighbor(b.Get(x, y+1), self)
	return up && down
}

func isBlockingNeighbor(neighbor, self CardIndex) bool {
	return neighbor >= 3 && neighbor > self
}

// mergeableNeighborCount counts non-empty orthogonal neighbors of (x,y)
// that could merge with self were they to slide into its cell.
func mergeableNeighborCount(b Board, x, y int, self CardIndex) int {
	n := 0
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || nx > 3 || ny < 0 || ny > 3 {
			continue
		}
		neighbor := b.Get(nx, ny)
		if !neighbor.IsEmpty() && CanMerge(neighbor, self) {
			n++
		}
	}
	return n
}

// hasNeighborWithIndex reports whether any orthogonal neighbor of (x,y)
// carries exactly the given index.
func hasNeighborWithIndex(b Board, x, y int, want CardIndex) bool {
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || nx > 3 || ny < 0 || ny > 3 {
			continue
		}
		if b.Get(nx, ny) == want {
			return true
		}
	}
	return false
}

func touchesEdge(x, y int) (edges int) {
	if x == 0 || x == 3 {
		edges++
	}
	if y == 0 || y == 3 {
		edges++
	}
	return edges
}

// OpennessEvaluator prefers empty space, mergeable neighbors, and a
// climbing ladder of adjacent cards, penalizing cells boxed in on an axis.
type OpennessEvaluator struct{}

func (OpennessEvaluator) Name() string { return "Openness" }

func (OpennessEvaluator) Evaluate(b Board) float32 {
	var total float32
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			cell := b.Get(x, y)
			if cell.IsEmpty() {
				total += 2
				continue
			}
			total += float32(mergeableNeighborCount(b, x, y, cell))
			if horizontallyTrapped(b, x, y, cell) {
				total--
			}
			if verticallyTrapped(b, x, y, cell) {
				total--
			}
			if cell >= 3 && hasNeighborWithIndex(b, x, y, cell+1) {
				total++
			}
		}
	}
	return total
}

// OpennessMatthewEvaluator is Openness's stronger variant: the same
// structure, reweighted, plus edge-hugging bonuses for cells near the
// board's current maximum once that maximum exceeds index 4.
type OpennessMatthewEvaluator struct{}

func (OpennessMatthewEvaluator) Name() string { return "OpennessMatthew" }

func (OpennessMatthewEvaluator) Evaluate(b Board) float32 {
	var total float32
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			cell := b.Get(x, y)
			if cell.IsEmpty() {
				total += 3
				continue
			}
			total += 2 * float32(mergeableNeighborCount(b, x, y, cell))
			if horizontallyTrapped(b, x, y, cell) {
				total -= 5
			}
			if verticallyTrapped(b, x, y, cell) {
				total -= 5
			}
			if cell >= 3 && hasNeighborWithIndex(b, x, y, cell+1) {
				total += 2
			}
		}
	}

	if m := b.MaxCardIndex(); m > 4 {
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				cell := b.Get(x, y)
				switch {
				case cell == m:
					total += 3 * float32(touchesEdge(x, y))
				case cell == m-1:
					if hasNeighborWithIndex(b, x, y, m) {
						total++
						total += float32(touchesEdge(x, y))
					}
				case cell == m-2:
					if neighborHasGrandNeighbor(b, x, y, m-1, m) {
						total++
					}
				}
			}
		}
	}
	return total
}

// neighborHasGrandNeighbor reports whether (x,y) has an orthogonal
// neighbor equal to mid which itself has an orthogonal neighbor equal to
// top.
func neighborHasGrandNeighbor(b Board, x, y int, mid, top CardIndex) bool {
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || nx > 3 || ny < 0 || ny > 3 {
			continue
		}
		if b.Get(nx, ny) != mid {
			continue
		}
		if hasNeighborWithIndex(b, nx, ny, top) {
			return true
		}
	}
	return false
}

// Blend linearly combines two evaluators: WeightA*A + (1-WeightA)*B,
// generalizing a middlegame/endgame-style blend to arbitrary evaluator
// pairs.
type Blend struct {
	A, B     Evaluator
	WeightA  float32
}

func (bl Blend) Name() string {
	return "Blend(" + bl.A.Name() + "," + bl.B.Name() + ")"
}

func (bl Blend) Evaluate(b Board) float32 {
	return bl.WeightA*bl.A.Evaluate(b) + (1-bl.WeightA)*bl.B.Evaluate(b)
}
