package llm

import "context"

// PurposeExamGen labels exam-generation calls in the event log.
const PurposeExamGen = "exam-gen"

type purposeKey struct{}

// WithPurpose tags the context with a label that the logging layer
// records on every call made under it.
func WithPurpose(ctx context.Context, label string) context.Context {
	return context.WithValue(ctx, purposeKey{}, label)
}

// PurposeFrom returns the label set by WithPurpose, or "unspecified".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return "unspecified"
}
