package examgen

import (
	"math/rand/v2"

	"github.com/fasahat78/startege/internal/exam"
)

// optionPositions are the presentation IDs options take after shuffling.
var optionPositions = [exam.OptionsPerQuestion]string{"A", "B", "C", "D"}

// ShuffleOptions reshuffles every question's options so the correct
// option's position carries no signal, then relabels options by their
// new position and remaps correctOptionId and the incorrect-rationale
// keys to match. It runs once, before the exam is persisted; everything
// downstream sees only the shuffled IDs.
func ShuffleOptions(questions []exam.Question, rng *rand.Rand) []exam.Question {
	out := make([]exam.Question, len(questions))
	for i, q := range questions {
		out[i] = shuffleQuestion(q, rng)
	}
	return out
}

func shuffleQuestion(q exam.Question, rng *rand.Rand) exam.Question {
	shuffled := make([]exam.Option, len(q.Options))
	copy(shuffled, q.Options)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	// Old option ID -> new positional ID.
	mapping := make(map[string]string, len(shuffled))
	for i := range shuffled {
		mapping[shuffled[i].ID] = optionPositions[i]
		shuffled[i].ID = optionPositions[i]
	}

	var incorrect map[string]string
	if len(q.Rationale.Incorrect) > 0 {
		incorrect = make(map[string]string, len(q.Rationale.Incorrect))
		for id, text := range q.Rationale.Incorrect {
			incorrect[mapping[id]] = text
		}
	}

	q.Options = shuffled
	q.CorrectOptionID = mapping[q.CorrectOptionID]
	q.Rationale.Incorrect = incorrect
	return q
}
