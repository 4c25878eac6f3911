package analyzer

// Category is the closed set of task categories.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryHealth   Category = "Health"
	CategoryFinance  Category = "Finance"
	CategoryOther    Category = "Other"
)

// Categories lists every valid category. Parser validation and tests
// range over this slice so membership changes are a single edit.
func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryHealth, CategoryFinance, CategoryOther}
}

// IsValid reports whether c is a member of the category set.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Priority is the closed set of task priorities.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists every valid priority.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid reports whether p is a member of the priority set.
func (p Priority) IsValid() bool {
	for _, known := range Priorities() {
		if p == known {
			return true
		}
	}
	return false
}

// Analysis is the validated categorization of a single task.
// DueDate is nil when the task carries no date reference; when present
// it is always a YYYY-MM-DD calendar date string.
type Analysis struct {
	Category  Category `json:"category"`
	Priority  Priority `json:"priority"`
	Reasoning string   `json:"reasoning"`
	DueDate   *string  `json:"due_date"`
}

// AnalyzeInput is the input for task analysis.
type AnalyzeInput struct {
	Task string // Raw task description from the user
}

// AnalyzeOutput is the result of task analysis.
type AnalyzeOutput struct {
	Analysis Analysis
	Model    string // Which model produced the analysis
}
