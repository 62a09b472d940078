//////////////////////////////////////////////////////
// hint.go
// next-card hint: {One, Two, Three, Bonus}
// grounded on movegen.go's Color/Figure enum-with-ArraySize idiom
//////////////////////////////////////////////////////

package threesus

// NextCardHint carries what the real game exposes about the upcoming
// card: its value if it is 1, 2, or 3, or the fact that it is a bonus card
// (value >= 6, exact value unknown to the engine).
type NextCardHint uint8

const (
	HintOne NextCardHint = iota
	HintTwo
	HintThree
	HintBonus

	hintArraySize = int(iota)
)

func (h NextCardHint) String() string {
	switch h {
	case HintOne:
		return "One"
	case HintTwo:
		return "Two"
	case HintThree:
		return "Three"
	case HintBonus:
		return "Bonus"
	default:
		return "Invalid"
	}
}

// KnownIndex converts a One/Two/Three hint to its concrete card index. It
// returns false for HintBonus, whose exact value is not known.
func (h NextCardHint) KnownIndex() (CardIndex, bool) {
	switch h {
	case HintOne:
		return 1, true
	case HintTwo:
		return 2, true
	case HintThree:
		return 3, true
	default:
		return 0, false
	}
}

// IsBonus reports whether the hint signals a bonus card.
func (h NextCardHint) IsBonus() bool {
	return h == HintBonus
}

// BonusRange reports the inclusive range of possible bonus card indices
// given the pre-placement maximum card index on the board: 4..(maxIndex-3).
// It reports ok=false when that range is empty (maxIndex < 7), meaning no
// bonus card can legally appear yet.
func BonusRange(maxIndex CardIndex) (lo, hi CardIndex, ok bool) {
	if int(maxIndex)-3 < 4 {
		return 0, 0, false
	}
	return 4, maxIndex - 3, true
}
