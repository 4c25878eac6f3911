package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	analyzerHTTP "smart-task-analyzer/internal/analyzer/delivery/http"
	"smart-task-analyzer/internal/middleware"
	"smart-task-analyzer/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	middleware      *middleware.Middleware
	analyzerHandler analyzerHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware      *middleware.Middleware
	AnalyzerHandler analyzerHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		middleware:      cfg.Middleware,
		analyzerHandler: cfg.AnalyzerHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.middleware == nil {
		return errors.New("middleware is required")
	}
	if srv.analyzerHandler == nil {
		return errors.New("analyzer handler is required")
	}
	return nil
}
