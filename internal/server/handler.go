package server

import (
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"github.com/nltax/income-calculator/internal/calculation"
	"github.com/nltax/income-calculator/internal/config"
	"github.com/nltax/income-calculator/internal/domain"
)

// CalculationResponse is the API result: the Box 1 summary plus the optional
// Box 3 note.
type CalculationResponse struct {
	domain.TaxSummary
	Box3 *calculation.Box3Note `json:"box3,omitempty"`
}

// ErrorResponse is the API error shape.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req config.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.parser.Validate(&req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	// A calculation failure is a valid response, not an HTTP error: the
	// summarizer absorbs it and sets the error field.
	resp := CalculationResponse{
		TaxSummary: s.sum.Summarize(req.Inputs(), req.Year),
	}
	if req.Box3 != nil {
		note, err := box3Note(req.Box3, req.Year)
		if err != nil {
			s.log.Warnw("box 3 estimate skipped", "year", req.Year, "err", err)
		} else {
			resp.Box3 = note
		}
	}

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (s *Server) handleYears(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string][]int{"years": domain.SupportedYears()})
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func box3Note(req *config.Box3Request, year int) (*calculation.Box3Note, error) {
	return calculation.Box3Estimate(
		decimal.NewFromFloat(req.Assets),
		decimal.NewFromFloat(req.Debts),
		req.FiscalPartner,
		year,
	)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	data, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
