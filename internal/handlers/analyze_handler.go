package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-tailor/internal/services"
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
	}
}

// analyzeInput mirrors models.AnalyzeRequest with every field optional so
// missing fields can be told apart from empty ones.
type analyzeInput struct {
	JobText    *string `json:"job_text"`
	ResumeText *string `json:"resume_text"`
	UseLLM     *bool   `json:"use_llm"`
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req analyzeInput

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobText == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_text is required",
		})
	}

	if req.ResumeText == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_text is required",
		})
	}

	log.Printf("🔍 Analyzing request %s (%d/%d chars)\n",
		c.GetRespHeader(fiber.HeaderXRequestID), len(*req.JobText), len(*req.ResumeText))

	result := h.analyzer.Analyze(c.UserContext(), *req.JobText, *req.ResumeText, req.UseLLM)

	return c.JSON(result)
}
