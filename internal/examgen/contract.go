package examgen

import (
	"fmt"

	"github.com/fasahat78/startege/internal/exam"
)

// contractViolations checks the structural contract every generated
// question set must honor, regardless of exam type. Composition rules
// (coverage, minimums, caps) are examcheck's job.
func contractViolations(questions []exam.Question, wantCount int) []string {
	var out []string

	if len(questions) != wantCount {
		out = append(out, fmt.Sprintf("question count is %d, want %d", len(questions), wantCount))
	}

	seenIDs := make(map[string]bool, len(questions))
	for i, q := range questions {
		label := q.ID
		if label == "" {
			label = fmt.Sprintf("question %d", i+1)
			out = append(out, fmt.Sprintf("question %d has no ID", i+1))
		}
		if seenIDs[q.ID] {
			out = append(out, fmt.Sprintf("duplicate question ID %q", q.ID))
		}
		seenIDs[q.ID] = true

		if q.Stem == "" {
			out = append(out, fmt.Sprintf("%s has an empty stem", label))
		}
		if len(q.Options) != exam.OptionsPerQuestion {
			out = append(out, fmt.Sprintf("%s has %d options, want %d", label, len(q.Options), exam.OptionsPerQuestion))
		}

		optIDs := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.Text == "" {
				out = append(out, fmt.Sprintf("%s option %s has empty text", label, o.ID))
			}
			if optIDs[o.ID] {
				out = append(out, fmt.Sprintf("%s has duplicate option ID %q", label, o.ID))
			}
			optIDs[o.ID] = true
		}

		if !optIDs[q.CorrectOptionID] {
			out = append(out, fmt.Sprintf("%s correctOptionId %q is not one of its options", label, q.CorrectOptionID))
		}

		if len(q.ConceptIDs) == 0 {
			out = append(out, fmt.Sprintf("%s has no concept IDs", label))
		}
		if len(q.CategoryIDs) == 0 {
			out = append(out, fmt.Sprintf("%s has no category IDs", label))
		}
		if !exam.ValidTag(q.DifficultyTag) {
			out = append(out, fmt.Sprintf("%s has unknown difficulty tag %q", label, q.DifficultyTag))
		}
		if q.Rationale.Correct == "" {
			out = append(out, fmt.Sprintf("%s has no rationale for the correct option", label))
		}
		for id := range q.Rationale.Incorrect {
			if !optIDs[id] {
				out = append(out, fmt.Sprintf("%s rationale references unknown option %q", label, id))
			}
		}
	}

	return out
}
