package services

import (
	"sort"
	"strings"
)

// Multi-word skills, matched as substrings of the lowercased text.
var phraseSkills = []string{
	"machine learning", "data structures", "object-oriented programming", "github actions", "gitlab ci",
	"ci/cd", "rest api", "graph ql", "graphq l", "unit testing", "test driven development",
	"next.js", "react native", "sql server", "windows server",
}

// Single-token skills, matched against Normalize output.
var knownSkills = toSet([]string{
	"python", "java", "javascript", "typescript", "node", "react", "next", "fastapi", "flask", "django", "express",
	"tailwind", "html", "css", "sass",
	"git", "github", "gitlab",
	"linux", "macos", "windows",
	"docker", "kubernetes", "k8s", "nginx",
	"aws", "gcp", "azure", "cloud",
	"sql", "postgres", "mysql", "sqlite", "mongodb", "redis",
	"rest", "graphql", "oauth", "jwt", "api",
	"jenkins", "pytest", "unittest", "jest", "vitest", "playwright", "cypress",
	"pandas", "numpy", "scikit-learn", "sklearn", "tensorflow", "pytorch", "ml",
	"uvicorn", "gunicorn",
	"terraform", "ansible",
	"bash", "shell", "zsh", "powershell",
	"kafka", "rabbitmq",
	"langchain", "ollama", "openai",
})

// ExtractSkills returns the sorted, canonical skills found in text.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	found := make(map[string]struct{})

	for _, phrase := range phraseSkills {
		if strings.Contains(lower, phrase) {
			found[phrase] = struct{}{}
		}
	}

	for _, tok := range Normalize(text) {
		if _, ok := knownSkills[tok]; ok {
			found[tok] = struct{}{}
		}
	}

	if _, ok := found["next"]; ok && strings.Contains(lower, "next.js") {
		delete(found, "next")
		found["next.js"] = struct{}{}
	}
	if _, ok := found["ml"]; ok {
		delete(found, "ml")
		found["machine learning"] = struct{}{}
	}

	return sortedKeys(found)
}

// Intersect returns the sorted skills present in both sets.
func Intersect(a, b []string) []string {
	in := toSet(b)
	out := make(map[string]struct{})
	for _, s := range a {
		if _, ok := in[s]; ok {
			out[s] = struct{}{}
		}
	}
	return sortedKeys(out)
}

// Difference returns the sorted skills of a that are not in b.
func Difference(a, b []string) []string {
	in := toSet(b)
	out := make(map[string]struct{})
	for _, s := range a {
		if _, ok := in[s]; !ok {
			out[s] = struct{}{}
		}
	}
	return sortedKeys(out)
}

// Overlap is |a ∩ b| / max(1, |a ∪ b|) over the distinct items, rounded to
// three decimals.
func Overlap(a, b []string) float64 {
	setA, setB := toSet(a), toSet(b)
	union := len(setA)
	inter := 0
	for s := range setB {
		if _, ok := setA[s]; ok {
			inter++
		} else {
			union++
		}
	}
	if union < 1 {
		union = 1
	}
	return roundTo(float64(inter)/float64(union), 3)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
