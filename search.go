//////////////////////////////////////////////////////
// search.go
// expectimax search: depth-limited, card-count horizon, alternating
// MAX/CHANCE plies
// grounded on search.go's searchTree/search/tryMove recursive shape and
// its Options-validated NewEngine construction contract
//////////////////////////////////////////////////////

package threesus

// Stats accumulates diagnostics for a single GetNextMove call. Reset at
// the start of every top-level search.
type Stats struct {
	Evaluations uint64
}

// SearchConfig configures an expectimax Search. Depth is the number of MAX
// plies descended from the root (>= 1). Horizon is the card-count horizon
// C (1 <= Horizon <= Depth): the root chance ply uses the known hint, chance
// plies at 1 <= depthFromRoot < Horizon are weighted by the live deck
// distribution; beyond it, placement is treated as deterministic.
// Evaluator scores leaf boards.
type SearchConfig struct {
	Depth     int
	Horizon   int
	Evaluator Evaluator
}

func (cfg SearchConfig) validate() error {
	if cfg.Depth < 1 {
		return newConfigError("depth must be >= 1")
	}
	if cfg.Horizon < 1 {
		return newConfigError("horizon must be >= 1")
	}
	if cfg.Horizon > cfg.Depth {
		return newConfigError("horizon must be <= depth")
	}
	if cfg.Evaluator == nil {
		return newConfigError("evaluator must not be nil")
	}
	return nil
}

// Search is the sequential expectimax recursion used beneath the bot
// facade's root-level parallel fan-out.
type Search struct {
	cfg SearchConfig
}

// NewSearch validates cfg and constructs a Search. Invalid configuration
// is a programmer error reported synchronously, never an operational
// outcome.
func NewSearch(cfg SearchConfig) (*Search, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Search{cfg: cfg}, nil
}

// EvaluateMove shifts b in direction dir and, if that changes the board,
// evaluates the resulting subtree to remainingDepth further MAX plies
// using hint for the immediate next card. It reports ok=false if dir is
// not a legal move from b. evaluations accumulates the number of leaf
// evaluator calls performed.
func (s *Search) EvaluateMove(
	b Board,
	deck DeckCounter,
	hint NextCardHint,
	dir Direction,
	remainingDepth int,
	evaluations *uint64,
) (quality float32, ok bool) {
	nb, placements := Shift(b, dir)
	if !Moved(b, nb) {
		return 0, false
	}
	q := s.chanceNode(nb, placements, deck, hint, 0, remainingDepth, evaluations)
	return q, true
}

// value is the shared leaf/internal dispatch: evaluate directly when no
// MAX plies remain, otherwise descend into a MAX node and fall back to
// evaluating when that MAX node has no legal move (game over).
func (s *Search) value(b Board, deck DeckCounter, depthFromRoot, remainingDepth int, evaluations *uint64) float32 {
	if remainingDepth == 0 {
		*evaluations++
		return s.cfg.Evaluator.Evaluate(b)
	}
	_, q, found := s.maxNode(b, deck, depthFromRoot, remainingDepth, evaluations)
	if !found {
		*evaluations++
		return s.cfg.Evaluator.Evaluate(b)
	}
	return q
}

// maxNode is a MAX ply: the player picks the direction maximizing quality,
// in the fixed tie-break order Left, Right, Up, Down. Non-moving
// directions contribute nothing.
func (s *Search) maxNode(b Board, deck DeckCounter, depthFromRoot, remainingDepth int, evaluations *uint64) (Direction, float32, bool) {
	var bestDir Direction
	var bestQuality float32
	found := false

	for _, d := range directionOrder {
		nb, placements := Shift(b, d)
		if !Moved(b, nb) {
			continue
		}
		// hint is irrelevant below depthFromRoot == 0, which never
		// recurs here (the root's chance node is handled by EvaluateMove).
		q := s.chanceNode(nb, placements, deck, HintOne, depthFromRoot, remainingDepth-1, evaluations)
		if !found || q > bestQuality {
			bestQuality = q
			bestDir = d
			found = true
		}
	}
	return bestDir, bestQuality, found
}

// chanceNode is a CHANCE ply: the game places the incoming card.
//   - depthFromRoot == 0: the true next-card hint is known (One/Two/Three,
//     or Bonus with the bonus range derived from nb's pre-placement max).
//   - depthFromRoot in [1, Horizon): average over 1/2/3 weighted by the
//     live deck counts.
//   - depthFromRoot >= Horizon: deterministic — recurse once on nb itself
//     with no card placed.
func (s *Search) chanceNode(
	nb Board,
	placements PlacementCells,
	deck DeckCounter,
	hint NextCardHint,
	depthFromRoot, remainingDepth int,
	evaluations *uint64,
) float32 {
	switch {
	case depthFromRoot == 0:
		return s.rootChance(nb, placements, deck, hint, remainingDepth, evaluations)
	case depthFromRoot < s.cfg.Horizon:
		return s.deckWeightedChance(nb, placements, deck, depthFromRoot, remainingDepth, evaluations)
	default:
		return s.value(nb, deck, depthFromRoot+1, remainingDepth, evaluations)
	}
}

func (s *Search) rootChance(
	nb Board,
	placements PlacementCells,
	deck DeckCounter,
	hint NextCardHint,
	remainingDepth int,
	evaluations *uint64,
) float32 {
	if hint.IsBonus() {
		return s.bonusChance(nb, placements, deck, remainingDepth, evaluations)
	}
	idx, _ := hint.KnownIndex()

	var sum, weight float32
	for _, cell := range placements {
		if cell.IsSentinel() {
			continue
		}
		placed := nb.Set(int(cell.X), int(cell.Y), idx)
		sum += s.value(placed, deck, 1, remainingDepth, evaluations)
		weight++
	}
	return sum / weight
}

func (s *Search) bonusChance(
	nb Board,
	placements PlacementCells,
	deck DeckCounter,
	remainingDepth int,
	evaluations *uint64,
) float32 {
	lo, hi, ok := BonusRange(nb.MaxCardIndex())
	var sum, weight float32
	if ok {
		for bonusIdx := lo; bonusIdx <= hi; bonusIdx++ {
			for _, cell := range placements {
				if cell.IsSentinel() {
					continue
				}
				placed := nb.Set(int(cell.X), int(cell.Y), bonusIdx)
				sum += s.value(placed, deck, 1, remainingDepth, evaluations)
				weight++
			}
		}
	}
	if weight == 0 {
		// No bonus index is legal yet (board too small); approximate with
		// the shifted board unchanged, matching the beyond-horizon
		// deterministic fallback.
		return s.value(nb, deck, 1, remainingDepth, evaluations)
	}
	return sum / weight
}

func (s *Search) deckWeightedChance(
	nb Board,
	placements PlacementCells,
	deck DeckCounter,
	depthFromRoot, remainingDepth int,
	evaluations *uint64,
) float32 {
	candidates := [3]struct {
		idx   CardIndex
		count int
	}{
		{1, deck.Ones},
		{2, deck.Twos},
		{3, deck.Threes},
	}

	var sum, weight float32
	for _, c := range candidates {
		if c.count <= 0 {
			continue
		}
		childDeck := deck
		childDeck.Remove(c.idx)

		for _, cell := range placements {
			if cell.IsSentinel() {
				continue
			}
			placed := nb.Set(int(cell.X), int(cell.Y), c.idx)
			w := float32(c.count)
			sum += w * s.value(placed, childDeck, depthFromRoot+1, remainingDepth, evaluations)
			weight += w
		}
	}
	return sum / weight
}
