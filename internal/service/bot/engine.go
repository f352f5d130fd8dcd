package bot

import (
	"math/rand"

	"github.com/mshenoda/connect4/internal/domain"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Preset is the search configuration behind a difficulty level.
type Preset struct {
	Depth     int       `json:"depth"`
	Heuristic Heuristic `json:"-"`
}

var presets = map[Difficulty]Preset{
	DifficultyEasy:   {Depth: 1, Heuristic: Threats},
	DifficultyMedium: {Depth: 3, Heuristic: Defensive},
	DifficultyHard:   {Depth: 3, Heuristic: BlockingOpponent},
}

// Difficulties in increasing strength
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty falls back to easy for anything unknown
func ParseDifficulty(s string) Difficulty {
	d := Difficulty(s)
	if _, ok := presets[d]; ok {
		return d
	}
	return DifficultyEasy
}

func (d Difficulty) Preset() Preset {
	if p, ok := presets[d]; ok {
		return p
	}
	return presets[DifficultyEasy]
}

// NewEngineForDifficulty builds the engine behind a difficulty level
func NewEngineForDifficulty(self domain.PlayerID, d Difficulty, rng *rand.Rand) *Engine {
	p := d.Preset()
	return NewEngine(self, p.Depth, p.Heuristic, rng)
}
