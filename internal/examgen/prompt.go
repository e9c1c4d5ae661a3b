package examgen

import (
	"fmt"
	"strings"

	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/examplan"
)

const systemPrompt = `You are an expert assessment designer for a professional AI governance certification platform.

You generate complete multiple-choice exams. Follow every rule below without exception.

Question design:
- Every question has exactly four options with one and only one correct answer.
- Distractors must be plausible but clearly incorrect to a knowledgeable learner.
- Never use "all of the above" or "none of the above".
- Prefer scenario-based questions, decision-making situations, and governance trade-offs over pure definition recall.

Scope:
- You may only test the concepts listed in the input, using their exact IDs.
- Do not introduce regulations, frameworks, or concepts outside the provided scope.
- Tag each question with the concept IDs and category IDs it actually tests, copied exactly from the input. Never invent IDs.

Output:
- Respond with JSON only, conforming to the provided schema.
- Question IDs are q1, q2, ... in order. Option IDs are A, B, C, D.
- Give a rationale for the correct option, and where useful, per-option rationales for the incorrect ones.`

// buildUserMessage renders the generation contract for one exam.
func buildUserMessage(input Input, feedback []string) string {
	var b strings.Builder

	switch input.Type {
	case exam.TypeLevel:
		fmt.Fprintf(&b, "Exam: Level %d — %s\n", input.LevelNumber, input.Title)
	case exam.TypeBoss:
		fmt.Fprintf(&b, "Exam: Level %d BOSS — %s\n", input.LevelNumber, input.Title)
	case exam.TypeCategory:
		fmt.Fprintf(&b, "Exam: Category %s — %s\n", input.CategoryID, input.Title)
	}
	if input.OutcomeStatement != "" {
		fmt.Fprintf(&b, "Outcome: %s\n", input.OutcomeStatement)
	}
	fmt.Fprintf(&b, "Questions: exactly %d\n", input.Policy.QuestionCount)

	b.WriteString("\nConcepts in scope:\n")
	for _, c := range input.Scope {
		fmt.Fprintf(&b, "- %s: %s (category %s)\n", c.ID, c.Name, c.CategoryID)
	}

	if len(input.Plan) > 0 {
		b.WriteString("\nQuestion plan (binding):\n")
		b.WriteString(examplan.FormatForPrompt(input.Plan))
		b.WriteString("\n")
	}

	writeRequirements(&b, input)

	if len(feedback) > 0 {
		b.WriteString("\nYour previous attempt was rejected. Fix every violation below:\n")
		for i, f := range feedback {
			fmt.Fprintf(&b, "%d. %s\n", i+1, f)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// writeRequirements renders the type-specific composition rules.
func writeRequirements(b *strings.Builder, input Input) {
	pol := input.Policy

	switch input.Type {
	case exam.TypeLevel:
		b.WriteString("\nRules:\n")
		b.WriteString("- Every question tests exactly one concept, per the plan above.\n")
		b.WriteString("- Every concept in scope is tested by exactly one question when counts allow.\n")

	case exam.TypeCategory:
		b.WriteString("\nRules:\n")
		fmt.Fprintf(b, "- Every question tests only concepts from category %s.\n", input.CategoryID)
		b.WriteString("- Concepts may repeat across questions; aim to touch each concept at least once.\n")

	case exam.TypeBoss:
		b.WriteString("\nRules (binding minimums):\n")
		if pol.MinMultiConceptCount > 0 {
			fmt.Fprintf(b, "- At least %d questions combine 2 or more concepts.\n", pol.MinMultiConceptCount)
		}
		if pol.MinCrossCategoryCount > 0 {
			fmt.Fprintf(b, "- At least %d questions span 2 or more categories.\n", pol.MinCrossCategoryCount)
		}
		if pol.MinScenarioCount > 0 {
			fmt.Fprintf(b, "- At least %d questions are scenario-based (apply, analyse, or judgement).\n", pol.MinScenarioCount)
		}
		if pol.MaxPerConcept > 0 {
			fmt.Fprintf(b, "- No single concept appears in more than %d questions.\n", pol.MaxPerConcept)
		}
		if len(input.RequiredCategoryIDs) > 0 {
			fmt.Fprintf(b, "- Each of these categories appears in at least one question: %s.\n",
				strings.Join(input.RequiredCategoryIDs, ", "))
		}
		fmt.Fprintf(b, "- Target difficulty mix: %.0f%% apply, %.0f%% analyse, %.0f%% judgement (recall fills the remainder).\n",
			pol.Mix.Apply*100, pol.Mix.Analyse*100, pol.Mix.Judgement*100)
	}
}
