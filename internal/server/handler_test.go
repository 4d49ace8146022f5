package server

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/nltax/income-calculator/internal/domain"
)

func doRequest(t *testing.T, s *Server, method, uri string, body []byte) *fasthttp.RequestCtx {
	t.Helper()
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != nil {
		req.SetBody(body)
	}
	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	s.Handler()(ctx)
	return ctx
}

func TestHandleCalculate(t *testing.T) {
	s := New(nil, nil)
	body := []byte(`{
		"income": 60000,
		"period": "year",
		"hoursPerWeek": 40,
		"year": 2025,
		"socialSecurity": true
	}`)

	ctx := doRequest(t, s, fasthttp.MethodPost, "/calculate", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp CalculationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Empty(t, resp.Err)
	require.NotNil(t, resp.Details)
	assert.True(t, resp.Details.GrossYear.Equal(decimal.NewFromInt(60000)))
	assert.True(t, resp.NetIncome.IsPositive())
	assert.Nil(t, resp.Box3)

	require.NotEmpty(t, resp.Breakdown)
	assert.Equal(t, "Gross annual income", resp.Breakdown[0].Description)
	assert.Equal(t, "Net annual income", resp.Breakdown[len(resp.Breakdown)-1].Description)
}

func TestHandleCalculateWithBox3(t *testing.T) {
	s := New(nil, nil)
	body := []byte(`{
		"income": 60000,
		"period": "year",
		"hoursPerWeek": 40,
		"year": 2023,
		"socialSecurity": true,
		"box3": {"assets": 100000, "debts": 0, "fiscalPartner": false}
	}`)

	ctx := doRequest(t, s, fasthttp.MethodPost, "/calculate", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp CalculationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	require.NotNil(t, resp.Box3)
	assert.True(t, resp.Box3.TaxableBase.Equal(decimal.NewFromInt(43000)))
}

func TestHandleCalculateZeroIncome(t *testing.T) {
	s := New(nil, nil)
	body := []byte(`{"income": 0, "period": "year", "year": 2025}`)

	ctx := doRequest(t, s, fasthttp.MethodPost, "/calculate", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp CalculationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Empty(t, resp.Breakdown)
	assert.True(t, resp.NetIncome.IsZero())
}

func TestHandleCalculateBadRequests(t *testing.T) {
	s := New(nil, nil)

	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{"wrong method", fasthttp.MethodGet, "", fasthttp.StatusMethodNotAllowed},
		{"malformed json", fasthttp.MethodPost, "{", fasthttp.StatusBadRequest},
		{"invalid year", fasthttp.MethodPost, `{"income": 100, "year": 1999}`, fasthttp.StatusBadRequest},
		{"negative income", fasthttp.MethodPost, `{"income": -5, "year": 2025}`, fasthttp.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := doRequest(t, s, tt.method, "/calculate", []byte(tt.body))
			assert.Equal(t, tt.status, ctx.Response.StatusCode())

			var errResp ErrorResponse
			require.NoError(t, json.Unmarshal(ctx.Response.Body(), &errResp))
			assert.Equal(t, tt.status, errResp.Status)
			assert.NotEmpty(t, errResp.Message)
		})
	}
}

func TestHandleYears(t *testing.T) {
	s := New(nil, nil)

	ctx := doRequest(t, s, fasthttp.MethodGet, "/years", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp map[string][]int
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, domain.SupportedYears(), resp["years"])
}

func TestHandleHealthAndNotFound(t *testing.T) {
	s := New(nil, nil)

	ctx := doRequest(t, s, fasthttp.MethodGet, "/healthz", nil)
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `"ok"`)

	ctx = doRequest(t, s, fasthttp.MethodGet, "/nope", nil)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
