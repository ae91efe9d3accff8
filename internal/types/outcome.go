package types

// StepOutcome distinguishes genuinely generated output from canned fallback
// output. Agents return it alongside their result so callers can tell the two
// apart instead of treating both as silent success.
type StepOutcome string

const (
	// OutcomeGenerated means the model produced the result.
	OutcomeGenerated StepOutcome = "generated"
	// OutcomeFallback means the deterministic fallback was substituted.
	OutcomeFallback StepOutcome = "fallback"
)
