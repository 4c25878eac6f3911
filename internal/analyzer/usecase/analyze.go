package usecase

import (
	"context"
	"fmt"

	"smart-task-analyzer/internal/analyzer"
	"smart-task-analyzer/pkg/gemini"
)

// Analyze validates the task text, sends it to the model with the
// categorization instructions, and parses the structured reply.
// Exactly one outbound model call per submission, no retries.
func (uc *implUseCase) Analyze(ctx context.Context, input analyzer.AnalyzeInput) (analyzer.AnalyzeOutput, error) {
	task, err := analyzer.ValidateTask(input.Task)
	if err != nil {
		return analyzer.AnalyzeOutput{}, err
	}

	if uc.llm == nil {
		return analyzer.AnalyzeOutput{}, analyzer.ErrNotConfigured
	}

	uc.l.Infof(ctx, "%s: task_length=%d", logPrefixAnalyze, len(task))

	prompt := BuildSystemPrompt(uc.now())

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: prompt}},
		},
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: task}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     analyzeTemperature,
			MaxOutputTokens: analyzeMaxTokens,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: model call failed: %v", logPrefixAnalyze, err)
		return analyzer.AnalyzeOutput{}, fmt.Errorf("%w: %v", analyzer.ErrProvider, err)
	}

	text := resp.Text()
	if text == "" {
		uc.l.Warnf(ctx, "%s: model returned no text candidates", logPrefixAnalyze)
		return analyzer.AnalyzeOutput{}, fmt.Errorf("%w: empty model response", analyzer.ErrProvider)
	}

	analysis, err := ParseAnalysis(text)
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to parse model reply %q: %v", logPrefixAnalyze, text, err)
		return analyzer.AnalyzeOutput{}, err
	}

	uc.l.Infof(ctx, "%s: category=%s priority=%s has_due_date=%t",
		logPrefixAnalyze, analysis.Category, analysis.Priority, analysis.DueDate != nil)

	return analyzer.AnalyzeOutput{
		Analysis: analysis,
		Model:    uc.llm.Model(),
	}, nil
}
