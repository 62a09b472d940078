//////////////////////////////////////////////////////
// deck.go
// deck counter: 3-tuple (ones/twos/threes) with refill-on-empty semantics
// grounded on search.go's small value-struct-with-explicit-reset idiom
// (historyTable, Stats)
//////////////////////////////////////////////////////

package threesus

// DeckCounter tracks how many 1/2/3 cards remain in the bag the game draws
// from without replacement. Bonus cards are never counted here; they only
// arise via NextCardHint.
type DeckCounter struct {
	Ones, Twos, Threes int
}

// NewDeckCounter returns a freshly refilled counter.
func NewDeckCounter() DeckCounter {
	return DeckCounter{Ones: 4, Twos: 4, Threes: 4}
}

// LogicalDeck is the presentation layer's representation of the deck: a
// multiset of face values, only 1/2/3 are meaningful.
type LogicalDeck []int

// DeckCounterFromLogical counts instances of 1, 2, and 3 among deck,
// ignoring any other value.
func DeckCounterFromLogical(deck LogicalDeck) DeckCounter {
	var dc DeckCounter
	for _, v := range deck {
		switch v {
		case 1:
			dc.Ones++
		case 2:
			dc.Twos++
		case 3:
			dc.Threes++
		}
	}
	dc.refillIfEmpty()
	return dc
}

func (d *DeckCounter) refillIfEmpty() {
	if d.Ones == 0 && d.Twos == 0 && d.Threes == 0 {
		*d = NewDeckCounter()
	}
}

// RemoveOne removes a single "1" card, refilling the counter if this
// empties it.
func (d *DeckCounter) RemoveOne() {
	if d.Ones > 0 {
		d.Ones--
	}
	d.refillIfEmpty()
}

// RemoveTwo removes a single "2" card, refilling the counter if this
// empties it.
func (d *DeckCounter) RemoveTwo() {
	if d.Twos > 0 {
		d.Twos--
	}
	d.refillIfEmpty()
}

// RemoveThree removes a single "3" card, refilling the counter if this
// empties it.
func (d *DeckCounter) RemoveThree() {
	if d.Threes > 0 {
		d.Threes--
	}
	d.refillIfEmpty()
}

// Remove removes one card of the given index. Any index outside 1..3 is a
// no-op.
func (d *DeckCounter) Remove(index CardIndex) {
	switch index {
	case 1:
		d.RemoveOne()
	case 2:
		d.RemoveTwo()
	case 3:
		d.RemoveThree()
	}
}

// Total returns the sum of the three counters.
func (d DeckCounter) Total() int {
	return d.Ones + d.Twos + d.Threes
}
