package form

import (
	"strconv"
	"strings"
)

const emptyPlaceholder = "—"

// View is the render-ready snapshot of a form.
type View struct {
	JobText     string
	ResumeText  string
	UseLLM      bool
	Submitting  bool
	SubmitLabel string
	Error       string

	HasResult       bool
	MatchedSkills   string
	MissingSkills   string
	TailoredBullets []string
	BulletsText     string
	Jaccard         string
	HasJaccard      bool
	SkillMatch      string
	HasSkillMatch   bool
}

func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := View{
		JobText:     f.JobText,
		ResumeText:  f.ResumeText,
		UseLLM:      f.UseLLM,
		Submitting:  f.submitting,
		SubmitLabel: "Analyze",
		Error:       f.errMsg,
	}
	if f.submitting {
		v.SubmitLabel = "Analyzing..."
	}

	if f.result == nil {
		return v
	}

	r := f.result
	v.HasResult = true
	v.MatchedSkills = joinOrPlaceholder(r.MatchedSkills)
	v.MissingSkills = joinOrPlaceholder(r.MissingSkills)
	v.TailoredBullets = r.TailoredBullets
	v.BulletsText = strings.Join(r.TailoredBullets, "\n")

	if r.Notes.Jaccard != nil {
		v.HasJaccard = true
		v.Jaccard = formatScore(*r.Notes.Jaccard)
	}
	if r.Notes.SkillMatch != nil {
		v.HasSkillMatch = true
		v.SkillMatch = formatScore(*r.Notes.SkillMatch)
	}

	return v
}

func joinOrPlaceholder(items []string) string {
	if s := strings.Join(items, ", "); s != "" {
		return s
	}
	return emptyPlaceholder
}

// formatScore prints the shortest form that round-trips, so 0.42 stays "0.42".
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
