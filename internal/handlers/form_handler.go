package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-tailor/internal/form"
)

const (
	formTemplate   = "index"
	layoutTemplate = "layout"
)

// FormHandler serves the analyze form. Every request gets its own form.Form,
// so no state is shared between visitors.
type FormHandler struct {
	analyzer form.Analyzer
}

func NewFormHandler(analyzer form.Analyzer) *FormHandler {
	return &FormHandler{
		analyzer: analyzer,
	}
}

// HandleIndex handles GET /
func (h *FormHandler) HandleIndex(c *fiber.Ctx) error {
	f := form.New(h.analyzer)
	return c.Render(formTemplate, f.View(), layoutTemplate)
}

// HandleSubmit handles POST /
func (h *FormHandler) HandleSubmit(c *fiber.Ctx) error {
	f := form.New(h.analyzer)
	f.JobText = c.FormValue("job_text")
	f.ResumeText = c.FormValue("resume_text")
	f.UseLLM = checkboxValue(c.FormValue("use_llm"))

	if err := f.Submit(); err != nil {
		log.Printf("⚠️  Analyze failed: %v\n", err)
	}

	return c.Render(formTemplate, f.View(), layoutTemplate)
}

// checkboxValue treats "on" (the browser default) and any true-ish value as
// checked.
func checkboxValue(v string) bool {
	if v == "on" {
		return true
	}
	b, _ := strconv.ParseBool(v)
	return b
}
