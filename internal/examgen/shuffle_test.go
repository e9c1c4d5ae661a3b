package examgen

import (
	"math/rand/v2"
	"testing"

	"github.com/fasahat78/startege/internal/exam"
)

func shuffleFixture() exam.Question {
	return exam.Question{
		ID:   "q1",
		Stem: "Which lawful basis fits?",
		Options: []exam.Option{
			{ID: "A", Text: "Consent"},
			{ID: "B", Text: "Contract"},
			{ID: "C", Text: "Legal obligation"},
			{ID: "D", Text: "Vital interests"},
		},
		CorrectOptionID: "B",
		ConceptIDs:      []string{"c1"},
		CategoryIDs:     []string{"cat-gdpr"},
		DifficultyTag:   exam.TagApply,
		Rationale: exam.Rationale{
			Correct: "A contract requires the processing.",
			Incorrect: map[string]string{
				"A": "Consent is not needed when a contract applies.",
				"D": "No one's life is at stake.",
			},
		},
	}
}

func TestShuffleKeepsAnswerAndRationaleAligned(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 50; i++ {
		q := shuffleQuestion(shuffleFixture(), rng)

		if len(q.Options) != exam.OptionsPerQuestion {
			t.Fatalf("options = %d, want %d", len(q.Options), exam.OptionsPerQuestion)
		}
		for j, o := range q.Options {
			if o.ID != optionPositions[j] {
				t.Fatalf("option %d relabeled %q, want %q", j, o.ID, optionPositions[j])
			}
		}

		// The correct ID must point at the original correct text.
		var correctText string
		for _, o := range q.Options {
			if o.ID == q.CorrectOptionID {
				correctText = o.Text
			}
		}
		if correctText != "Contract" {
			t.Fatalf("correct option text = %q, want \"Contract\"", correctText)
		}

		// Incorrect rationales must follow their options.
		for id, text := range q.Rationale.Incorrect {
			var optText string
			for _, o := range q.Options {
				if o.ID == id {
					optText = o.Text
				}
			}
			switch text {
			case "Consent is not needed when a contract applies.":
				if optText != "Consent" {
					t.Fatalf("rationale for Consent landed on %q", optText)
				}
			case "No one's life is at stake.":
				if optText != "Vital interests" {
					t.Fatalf("rationale for Vital interests landed on %q", optText)
				}
			}
		}
	}
}

func TestShuffleMovesCorrectOption(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		q := shuffleQuestion(shuffleFixture(), rng)
		seen[q.CorrectOptionID] = true
	}
	// Over 100 shuffles the correct answer should land on every position.
	for _, pos := range optionPositions {
		if !seen[pos] {
			t.Errorf("correct option never landed on %s", pos)
		}
	}
}
