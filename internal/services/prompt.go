package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildBulletPrompt asks for a single resume bullet tailored to the job.
func (pb *PromptBuilder) BuildBulletPrompt(jobText, resumeText string) string {
	return fmt.Sprintf(`Write one crisp STAR-style bullet (max 40 words) tailored to this JD.
JD:
%s

Resume:
%s
Bullet:`, jobText, resumeText)
}

// CleanBullet strips the formatting models like to wrap a single bullet in:
// code fences, a leading "Bullet:" label, list markers and quotes.
func CleanBullet(text string) string {
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	if strings.HasPrefix(strings.ToLower(text), "bullet:") {
		text = strings.TrimSpace(text[len("bullet:"):])
	}

	text = strings.TrimLeft(text, "-*• ")
	text = strings.Trim(text, `"`)

	return strings.TrimSpace(text)
}
