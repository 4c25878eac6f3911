package usecase

// Generation settings for the categorization call. Low temperature
// favors deterministic categorization over creative variation.
const (
	analyzeTemperature = 0.2
	analyzeMaxTokens   = 1024
)

// Log prefixes
const (
	logPrefixAnalyze = "internal.analyzer.usecase.Analyze"
)
