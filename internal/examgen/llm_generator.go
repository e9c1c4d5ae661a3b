package examgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/llm"
)

// LLMGenerator implements Generator over an llm.Provider. Each call is
// one generation round; it parses the response into questions and
// leaves contract and composition checking to the pipeline.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewLLMGenerator creates a generator with the given provider and config.
func NewLLMGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionSetOutput is the raw LLM response before validation.
type questionSetOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	ID              string          `json:"id"`
	Stem            string          `json:"stem"`
	Options         []optionOutput  `json:"options"`
	CorrectOptionID string          `json:"correctOptionId"`
	ConceptIDs      []string        `json:"conceptIds"`
	CategoryIDs     []string        `json:"categoryIds"`
	DifficultyTag   string          `json:"difficultyTag"`
	Rationale       rationaleOutput `json:"rationale"`
}

type optionOutput struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type rationaleOutput struct {
	Correct   string            `json:"correct"`
	Incorrect map[string]string `json:"incorrect"`
}

// Generate produces one candidate question set.
func (g *LLMGenerator) Generate(ctx context.Context, input Input, feedback []string) ([]exam.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExamGen)

	resp, err := g.provider.Generate(ctx, llm.Prompt{
		System:      systemPrompt,
		User:        buildUserMessage(input, feedback),
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("question generation: %w", err)
	}

	var raw questionSetOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse model reply: %w", err)
	}

	questions := make([]exam.Question, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		opts := make([]exam.Option, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, exam.Option{ID: o.ID, Text: o.Text})
		}
		questions = append(questions, exam.Question{
			ID:              q.ID,
			Stem:            q.Stem,
			Options:         opts,
			CorrectOptionID: q.CorrectOptionID,
			ConceptIDs:      q.ConceptIDs,
			CategoryIDs:     q.CategoryIDs,
			DifficultyTag:   exam.DifficultyTag(q.DifficultyTag),
			Rationale: exam.Rationale{
				Correct:   q.Rationale.Correct,
				Incorrect: q.Rationale.Incorrect,
			},
		})
	}

	return questions, nil
}
