// Package client talks to the analyzer service over HTTP.
package client

import (
	"errors"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/ai-tailor/internal/models"
)

// Client issues analyze calls against a fixed base URL. It performs no
// retries and sets no timeout of its own.
type Client struct {
	baseURL string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Analyze posts the job description and resume to <base>/analyze and
// decodes the reply. Failures are always *Error.
func (c *Client) Analyze(jobText, resumeText string, useLLM bool) (*models.AnalyzeResponse, error) {
	agent := fiber.Post(c.baseURL + "/analyze")
	agent.JSONEncoder(json.Marshal)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.Set(fiber.HeaderXRequestID, uuid.NewString())
	agent.JSON(models.AnalyzeRequest{
		JobText:    jobText,
		ResumeText: resumeText,
		UseLLM:     useLLM,
	})

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, &Error{Kind: KindNetwork, Err: errors.Join(errs...)}
	}

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, &Error{Kind: KindStatus, StatusCode: code}
	}

	var resp models.AnalyzeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &Error{Kind: KindDecode, StatusCode: code, Err: err}
	}

	return &resp, nil
}
