package services

import (
	"context"
	"log"
	"time"

	"alfredoptarigan/ai-tailor/internal/models"
)

const keywordLimit = 60

type AnalyzerService interface {
	// Analyze matches the resume against the job description. useLLM nil
	// falls back to the service default.
	Analyze(ctx context.Context, jobText, resumeText string, useLLM *bool) *models.AnalyzeResponse
}

type analyzerService struct {
	llm           LLMService
	llmDefault    bool
	llmTimeout    time.Duration
	promptBuilder *PromptBuilder
}

// NewAnalyzerService wires the analyzer. llm may be nil, in which case the
// LLM bullet is never produced.
func NewAnalyzerService(llm LLMService, llmDefault bool, llmTimeout time.Duration) AnalyzerService {
	return &analyzerService{
		llm:           llm,
		llmDefault:    llmDefault,
		llmTimeout:    llmTimeout,
		promptBuilder: NewPromptBuilder(),
	}
}

func (a *analyzerService) Analyze(ctx context.Context, jobText, resumeText string, useLLM *bool) *models.AnalyzeResponse {
	jdKeywords := TopKeywords(Normalize(jobText), keywordLimit)
	resumeKeywords := TopKeywords(Normalize(resumeText), keywordLimit)

	jdSkills := ExtractSkills(jobText)
	resumeSkills := ExtractSkills(resumeText)
	matched := Intersect(jdSkills, resumeSkills)
	missing := Difference(jdSkills, resumeSkills)

	bullets := TemplateBullets(matched, missing)

	enabled := a.llmDefault
	if useLLM != nil {
		enabled = *useLLM
	}
	if hint := a.bulletHint(ctx, jobText, resumeText, enabled); hint != "" {
		bullets = append([]string{hint}, bullets...)
	}

	skillMatch := Overlap(jdSkills, resumeSkills)
	jaccard := Overlap(jdKeywords, resumeKeywords)

	return &models.AnalyzeResponse{
		MatchedSkills:   matched,
		MissingSkills:   missing,
		JDKeywords:      jdKeywords,
		ResumeKeywords:  resumeKeywords,
		TailoredBullets: bullets,
		Notes: models.Notes{
			Jaccard:    &jaccard,
			SkillMatch: &skillMatch,
		},
	}
}

// bulletHint asks the LLM for one extra bullet. Any failure yields "".
func (a *analyzerService) bulletHint(ctx context.Context, jobText, resumeText string, enabled bool) string {
	if !enabled || a.llm == nil {
		return ""
	}

	if a.llmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.llmTimeout)
		defer cancel()
	}

	prompt := a.promptBuilder.BuildBulletPrompt(jobText, resumeText)
	text, err := a.llm.GenerateText(ctx, prompt, 0.3)
	if err != nil {
		log.Printf("⚠️  LLM bullet skipped: %v\n", err)
		return ""
	}

	return CleanBullet(text)
}
