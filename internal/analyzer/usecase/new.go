package usecase

import (
	"time"

	"smart-task-analyzer/pkg/gemini"
	pkgLog "smart-task-analyzer/pkg/log"
)

type implUseCase struct {
	l   pkgLog.Logger
	llm gemini.IGemini
	now func() time.Time
}

// New creates a new analyzer UseCase instance.
// llm may be nil when no API key is configured; Analyze then fails
// with ErrNotConfigured instead of panicking.
// now is the reference-clock source; nil defaults to time.Now.
func New(l pkgLog.Logger, llm gemini.IGemini, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:   l,
		llm: llm,
		now: now,
	}
}
