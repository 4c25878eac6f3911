package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-analyzer/internal/analyzer"
	"smart-task-analyzer/pkg/log"
)

// Handler is the public interface for the analyzer HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	Describe(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc analyzer.UseCase
}

// New creates a new HTTP handler for the analyzer domain.
func New(l log.Logger, uc analyzer.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
