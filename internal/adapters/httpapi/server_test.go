package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/phish-triage/internal/core"
)

type stubAdjudicator struct {
	verdict *core.Verdict
	err     error
}

func (a *stubAdjudicator) Adjudicate(ctx context.Context, req *core.EmailRequest, hint *core.StatisticalPrediction) (*core.Verdict, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.verdict, nil
}

func newTestServer(adj core.Adjudicator) *Server {
	service := core.NewTriageService(adj, nil, nil, nil, zap.NewNop(), false, 0, time.Second, 1, 0)
	return NewServer(service, zap.NewNop(), "127.0.0.1:0", []string{"*"}, false)
}

func doAnalyze(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeReturnsVerdict(t *testing.T) {
	s := newTestServer(&stubAdjudicator{verdict: &core.Verdict{
		Score:     95,
		Verdict:   core.VerdictPhishing,
		Message:   "Credential harvesting attempt",
		ModelUsed: "openai/gpt-4.1",
	}})

	rec := doAnalyze(t, s, `{"text": "click here to verify", "subject": "Urgent"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"score": 95, "verdict": "Phishing", "message": "Credential harvesting attempt"}`,
		rec.Body.String())

	// Internal fields stay internal
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Len(t, payload, 3)
}

func TestAnalyzeEmptyBodyRejected(t *testing.T) {
	s := newTestServer(&stubAdjudicator{verdict: &core.Verdict{Score: 0, Verdict: core.VerdictSafe}})

	for _, body := range []string{`{"text": ""}`, `{"subject": "hi"}`, `{}`} {
		rec := doAnalyze(t, s, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.JSONEq(t, `{"error": "Invalid input"}`, rec.Body.String())
	}
}

func TestAnalyzeMalformedRequestRejected(t *testing.T) {
	s := newTestServer(&stubAdjudicator{})

	rec := doAnalyze(t, s, `{"text": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Invalid input"}`, rec.Body.String())
}

func TestAnalyzeUnparseableModelResponse(t *testing.T) {
	s := newTestServer(&stubAdjudicator{err: &core.ResponseFormatError{
		Raw: "I believe this is phishing.",
		Err: errors.New("invalid character"),
	}})

	rec := doAnalyze(t, s, `{"text": "click here"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"error": "Invalid JSON from model", "raw": "I believe this is phishing."}`,
		rec.Body.String())
}

func TestAnalyzeUpstreamFailure(t *testing.T) {
	s := newTestServer(&stubAdjudicator{err: &core.UpstreamServiceError{
		Provider: "openai",
		Err:      errors.New("secret-internal-detail: connection refused"),
	}})

	rec := doAnalyze(t, s, `{"text": "click here"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Internal server error", payload["error"])
	assert.Equal(t, "upstream openai service unavailable", payload["details"])
	// The raw upstream error never reaches the client
	assert.NotContains(t, rec.Body.String(), "secret-internal-detail")
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(&stubAdjudicator{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
