package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ai-tailor/internal/client"
	"alfredoptarigan/ai-tailor/internal/models"
	"alfredoptarigan/ai-tailor/internal/views"
)

type stubAnalyzer struct {
	resp   *models.AnalyzeResponse
	err    error
	calls  int
	useLLM bool
}

func (s *stubAnalyzer) Analyze(_, _ string, useLLM bool) (*models.AnalyzeResponse, error) {
	s.calls++
	s.useLLM = useLLM
	return s.resp, s.err
}

func newFormApp(analyzer *stubAnalyzer) *fiber.App {
	app := fiber.New(fiber.Config{Views: views.NewEngine()})
	h := NewFormHandler(analyzer)
	app.Get("/", h.HandleIndex)
	app.Post("/", h.HandleSubmit)
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) string {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func submit(t *testing.T, app *fiber.App, values url.Values) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doRequest(t, app, req)
}

func score(v float64) *float64 { return &v }

func TestHandleIndexRendersEmptyForm(t *testing.T) {
	analyzer := &stubAnalyzer{}
	body := doRequest(t, newFormApp(analyzer), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, body, "<title>AI Tailor</title>")
	assert.Contains(t, body, `name="job_text"`)
	assert.Contains(t, body, `name="resume_text"`)
	assert.Contains(t, body, ">Analyze</button>")
	assert.NotContains(t, body, `id="result"`)
	assert.NotContains(t, body, `id="error"`)
	assert.Zero(t, analyzer.calls)
}

func TestHandleSubmitRendersResult(t *testing.T) {
	analyzer := &stubAnalyzer{resp: &models.AnalyzeResponse{
		MatchedSkills:   []string{"python", "docker"},
		TailoredBullets: []string{"Led X", "Built Y"},
		Notes:           models.Notes{Jaccard: score(0.42)},
	}}

	body := submit(t, newFormApp(analyzer), url.Values{
		"job_text":    {"Python Docker Go"},
		"resume_text": {"Python Docker"},
		"use_llm":     {"on"},
	})

	assert.Equal(t, 1, analyzer.calls)
	assert.True(t, analyzer.useLLM)
	assert.Contains(t, body, `id="result"`)
	assert.Contains(t, body, `<p id="matched-skills">python, docker</p>`)
	assert.Contains(t, body, `<p id="missing-skills">—</p>`)
	assert.Contains(t, body, "<li>Led X</li>")
	assert.Contains(t, body, "<li>Built Y</li>")
	assert.Contains(t, body, "Led X\nBuilt Y</textarea>")
	assert.Contains(t, body, "Match score (rough Jaccard): 0.42")
	assert.Contains(t, body, "Python Docker Go</textarea>")
	assert.Contains(t, body, " checked>")
}

func TestHandleSubmitOmitsMissingJaccard(t *testing.T) {
	analyzer := &stubAnalyzer{resp: &models.AnalyzeResponse{MatchedSkills: []string{"go"}}}

	body := submit(t, newFormApp(analyzer), url.Values{"job_text": {"Go"}, "resume_text": {"Go"}})

	assert.False(t, analyzer.useLLM)
	assert.Contains(t, body, `id="result"`)
	assert.NotContains(t, body, "Match score")
}

func TestHandleSubmitRendersStatusError(t *testing.T) {
	analyzer := &stubAnalyzer{err: &client.Error{Kind: client.KindStatus, StatusCode: 500}}

	body := submit(t, newFormApp(analyzer), url.Values{"job_text": {"a"}, "resume_text": {"b"}})

	assert.Contains(t, body, `<p class="error" id="error">API error 500</p>`)
	assert.NotContains(t, body, `id="result"`)
}

func TestCheckboxValue(t *testing.T) {
	assert.True(t, checkboxValue("on"))
	assert.True(t, checkboxValue("true"))
	assert.True(t, checkboxValue("1"))
	assert.False(t, checkboxValue(""))
	assert.False(t, checkboxValue("off"))
}
