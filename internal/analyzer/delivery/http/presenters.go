package http

import (
	"smart-task-analyzer/internal/analyzer"
)

// --- Request DTOs ---

type analyzeReq struct {
	Task string `json:"task"`
}

func (r analyzeReq) toInput() analyzer.AnalyzeInput {
	return analyzer.AnalyzeInput{
		Task: r.Task,
	}
}

// --- Response DTOs ---

type analyzeResp struct {
	Category  string  `json:"category"`
	Priority  string  `json:"priority"`
	Reasoning string  `json:"reasoning"`
	DueDate   *string `json:"due_date"`
}

func (h *handler) newAnalyzeResp(out analyzer.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Category:  string(out.Analysis.Category),
		Priority:  string(out.Analysis.Priority),
		Reasoning: out.Analysis.Reasoning,
		DueDate:   out.Analysis.DueDate,
	}
}

// describeResp documents the endpoint contract for the GET probe.
type describeResp struct {
	Status      string          `json:"status"`
	Endpoint    string          `json:"endpoint"`
	Method      string          `json:"method"`
	Description string          `json:"description"`
	Example     describeExample `json:"example"`
}

type describeExample struct {
	Request  analyzeReq  `json:"request"`
	Response analyzeResp `json:"response"`
}

func newDescribeResp() describeResp {
	return describeResp{
		Status:      "ok",
		Endpoint:    "/api/v1/tasks/analyze",
		Method:      "POST",
		Description: "Analyze a task and return category, priority, and due date",
		Example: describeExample{
			Request: analyzeReq{Task: "Fix bug in auth module - urgent"},
			Response: analyzeResp{
				Category:  string(analyzer.CategoryWork),
				Priority:  string(analyzer.PriorityHigh),
				Reasoning: "Technical work task with explicit urgency indicator",
				DueDate:   nil,
			},
		},
	}
}
