package analyzer

import "context"

// UseCase defines the business logic interface for the analyzer domain.
type UseCase interface {
	// Analyze validates the task text, asks the model for a categorization,
	// and returns the validated structured result.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
}
