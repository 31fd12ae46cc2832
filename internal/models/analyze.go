package models

// AnalyzeRequest is the body POSTed to <API_BASE>/analyze.
type AnalyzeRequest struct {
	JobText    string `json:"job_text"`
	ResumeText string `json:"resume_text"`
	UseLLM     bool   `json:"use_llm"`
}

type AnalyzeResponse struct {
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	JDKeywords      []string `json:"jd_keywords"`
	ResumeKeywords  []string `json:"resume_keywords"`
	TailoredBullets []string `json:"tailored_bullets"`
	Notes           Notes    `json:"notes"`
}

// Notes holds the optional scores computed by the analyzer. A nil field means
// the service did not report it.
type Notes struct {
	Jaccard    *float64 `json:"jaccard,omitempty"`
	SkillMatch *float64 `json:"skill_match,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
