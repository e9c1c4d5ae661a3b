package examgen

import "github.com/fasahat78/startege/internal/llm"

// QuestionSetSchema defines the JSON schema for a full exam generation
// response.
var QuestionSetSchema = &llm.Schema{
	Name:        "exam-question-set",
	Description: "A complete multiple-choice exam question set",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Unique question ID within this exam, e.g. \"q1\"",
						},
						"stem": map[string]any{
							"type":        "string",
							"description": "The question text shown to the learner",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id": map[string]any{
										"type":        "string",
										"description": "Option ID: A, B, C, or D",
									},
									"text": map[string]any{
										"type": "string",
									},
								},
								"required":             []any{"id", "text"},
								"additionalProperties": false,
							},
							"description": "Exactly 4 answer options",
						},
						"correctOptionId": map[string]any{
							"type":        "string",
							"description": "The ID of the single correct option",
						},
						"conceptIds": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "IDs of the in-scope concepts this question tests, copied exactly from the input",
						},
						"categoryIds": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "IDs of the categories those concepts belong to, copied exactly from the input",
						},
						"difficultyTag": map[string]any{
							"type":        "string",
							"enum":        []any{"recall", "apply", "analyse", "judgement"},
							"description": "Cognitive demand of the question",
						},
						"rationale": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"correct": map[string]any{
									"type":        "string",
									"description": "Why the correct option is correct",
								},
								"incorrect": map[string]any{
									"type":        "object",
									"description": "Option ID to explanation of why that option is wrong",
									"additionalProperties": map[string]any{
										"type": "string",
									},
								},
							},
							"required":             []any{"correct"},
							"additionalProperties": false,
						},
					},
					"required":             []any{"id", "stem", "options", "correctOptionId", "conceptIds", "categoryIds", "difficultyTag", "rationale"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
