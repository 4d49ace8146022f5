// Package server exposes the calculator over a small JSON API.
package server

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/nltax/income-calculator/internal/calculation"
	"github.com/nltax/income-calculator/internal/config"
)

// Server wires the summarizer behind fasthttp handlers.
type Server struct {
	sum    *calculation.Summarizer
	parser *config.InputParser
	log    *zap.SugaredLogger
}

// New creates a server. A nil summarizer gets the built-in calculator; a nil
// logger discards output.
func New(sum *calculation.Summarizer, log *zap.SugaredLogger) *Server {
	if sum == nil {
		sum = calculation.NewSummarizer(nil, nil)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Server{
		sum:    sum,
		parser: config.NewInputParser(),
		log:    log,
	}
}

// Handler routes all API endpoints.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/calculate":
			s.handleCalculate(ctx)
		case "/years":
			s.handleYears(ctx)
		case "/healthz":
			s.handleHealth(ctx)
		default:
			writeError(ctx, fasthttp.StatusNotFound, "not found")
		}
	}
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Infow("tax API listening", "addr", addr)
	return fasthttp.ListenAndServe(addr, s.Handler())
}
