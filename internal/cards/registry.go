package cards

import (
	"fmt"

	"covid-screening-bot/internal/model"
)

type entry struct {
	rank int
	card []model.Block
}

// registry is the total mapping from card id to rank and rendered content.
// Higher rank sorts first.
var registry = map[ID]entry{
	G1:   {rank: 17, card: cardG1},
	G2:   {rank: 18, card: cardG2},
	HF1:  {rank: 11, card: cardHF1},
	HF2:  {rank: 12, card: cardHF2},
	HF3:  {rank: 13, card: cardHF3},
	HF4:  {rank: 14, card: cardHF4},
	HF5:  {rank: 15, card: cardHF5},
	R3:   {rank: 4, card: cardR3},
	R4:   {rank: 7, card: cardR4},
	R5:   {rank: 10, card: cardR5},
	R6:   {rank: 6, card: cardR6},
	R7:   {rank: 9, card: cardR7},
	R8:   {rank: 8, card: cardR8},
	R9:   {rank: 5, card: cardR9},
	VA10: {rank: 3, card: cardVA10},
}

// Selection rules. The always-shown base set, one card per health
// condition, and a card triple per risk tier and symptom status.
var (
	Basic = []ID{G1, G2}

	Diabetes         = []ID{HF1}
	Cardio           = []ID{HF2}
	Lung             = []ID{HF3}
	HealthRisk       = []ID{HF4}
	Age              = []ID{HF4}
	HealthcareWorker = []ID{HF5}

	HighSymptomatic  = []ID{R3, R4, R5}
	HighAsymptomatic = []ID{R6, R8, R5}
	LowSymptomatic   = []ID{R9, R7, R5}
	LowAsymptomatic  = []ID{R6, R7, R5}

	Urgent = []ID{VA10}
)

func init() {
	rules := [][]ID{
		Basic, Diabetes, Cardio, Lung, HealthRisk, Age, HealthcareWorker,
		HighSymptomatic, HighAsymptomatic, LowSymptomatic, LowAsymptomatic,
		Urgent,
	}
	for _, rule := range rules {
		for _, id := range rule {
			if _, ok := registry[id]; !ok {
				panic(fmt.Sprintf("cards: rule references unregistered card %q", id))
			}
		}
	}
}

// Rank returns the ordering rank of id. Unknown ids are a data-table
// inconsistency and panic.
func Rank(id ID) int {
	e, ok := registry[id]
	if !ok {
		panic(fmt.Sprintf("cards: unknown card %q", id))
	}
	return e.rank
}

// Content returns the rendered blocks of id. Unknown ids panic, as Rank.
func Content(id ID) []model.Block {
	e, ok := registry[id]
	if !ok {
		panic(fmt.Sprintf("cards: unknown card %q", id))
	}
	return e.card
}
