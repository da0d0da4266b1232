package component

import (
	"github.com/lixenwraith/vi-snake/core"
)

// FoodKind selects the reward tier of a food item
type FoodKind uint8

const (
	FoodCommon FoodKind = iota
	FoodRare
	FoodEpic
)

// Cumulative selection thresholds for a uniform draw in [0,1)
// Common 0.5, Rare 0.3, Epic 0.2
const (
	FoodRareThreshold = 0.5
	FoodEpicThreshold = 0.8
)

// FoodKinds lists all kinds in ascending reward order
var FoodKinds = [3]FoodKind{FoodCommon, FoodRare, FoodEpic}

// Reward returns the score value of the kind
func (k FoodKind) Reward() int {
	switch k {
	case FoodRare:
		return 2
	case FoodEpic:
		return 3
	default:
		return 1
	}
}

// Probability returns the selection probability of the kind
func (k FoodKind) Probability() float64 {
	switch k {
	case FoodRare:
		return FoodEpicThreshold - FoodRareThreshold
	case FoodEpic:
		return 1 - FoodEpicThreshold
	default:
		return FoodRareThreshold
	}
}

func (k FoodKind) String() string {
	switch k {
	case FoodCommon:
		return "Common"
	case FoodRare:
		return "Rare"
	case FoodEpic:
		return "Epic"
	}
	return "Unknown"
}

// FoodKindFromDraw partitions a uniform value in [0,1) into a kind
func FoodKindFromDraw(v float64) FoodKind {
	switch {
	case v < FoodRareThreshold:
		return FoodCommon
	case v < FoodEpicThreshold:
		return FoodRare
	default:
		return FoodEpic
	}
}

// Food is the single consumable item on the playfield
type Food struct {
	Pos  core.Point
	Kind FoodKind
}
