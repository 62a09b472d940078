//////////////////////////////////////////////////////
// cards.go
// card index <-> face value <-> score tables
// grounded on movegen.go's Figure/Square enum-and-lookup-table idiom
//////////////////////////////////////////////////////

package threesus

import "fmt"

// CardIndex is the 4-bit encoding of a single board cell: 0 means empty,
// 1..15 identify a card on the value ladder 1, 2, 3, 6, 12, ...
type CardIndex uint8

const (
	indexMin CardIndex = 0
	indexMax CardIndex = 15
)

// cardValues maps index -> face value. Index 0 is empty (no face value);
// index 1..2 carry their own value; index k>=3 carries 3*2^(k-3).
var cardValues [16]int32

// cardScores maps index -> end-of-game score: 0 for index 0..2,
// 3^(k-2) for index k>=3.
var cardScores [16]int32

// valueToIndex is the inverse of cardValues, covering every value that
// actually appears on the ladder.
var valueToIndex map[int32]CardIndex

func init() {
	cardValues[0] = 0
	cardValues[1] = 1
	cardValues[2] = 2
	for k := 3; k <= 15; k++ {
		cardValues[k] = 3 * (int32(1) << uint(k-3))
	}

	for k := 0; k <= 15; k++ {
		if k <= 2 {
			cardScores[k] = 0
			continue
		}
		score := int32(1)
		for e := 0; e < k-2; e++ {
			score *= 3
		}
		cardScores[k] = score
	}

	valueToIndex = make(map[int32]CardIndex, 16)
	for k := 0; k <= 15; k++ {
		valueToIndex[cardValues[k]] = CardIndex(k)
	}
}

// Value returns the face value of a card index. Index 0 returns 0.
func (c CardIndex) Value() int32 {
	return cardValues[c&0xF]
}

// Score returns the end-of-game score contributed by a card index.
func (c CardIndex) Score() int32 {
	return cardScores[c&0xF]
}

// IsEmpty reports whether the index represents an empty cell.
func (c CardIndex) IsEmpty() bool {
	return c == 0
}

// String renders the card's face value for diagnostics, "." for empty.
func (c CardIndex) String() string {
	if c.IsEmpty() {
		return "."
	}
	return fmt.Sprintf("%d", c.Value())
}

// ValueToIndex is the explicit inverse of the index->value table. It
// reports false for any value that does not sit on the card ladder.
func ValueToIndex(value int32) (CardIndex, bool) {
	idx, ok := valueToIndex[value]
	return idx, ok
}
