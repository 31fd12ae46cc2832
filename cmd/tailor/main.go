// Command tailor submits a job description and resume from disk to the
// analyzer and prints the result.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/atotto/clipboard"

	"alfredoptarigan/ai-tailor/internal/client"
	"alfredoptarigan/ai-tailor/internal/config"
	"alfredoptarigan/ai-tailor/internal/form"
)

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

func main() {
	cfg := config.Load()

	jobPath := flag.String("job", "", "path to the job description text file")
	resumePath := flag.String("resume", "", "path to the resume text file")
	useLLM := flag.Bool("llm", false, "ask the analyzer for an LLM-written bullet")
	copyBullets := flag.Bool("copy", false, "copy the tailored bullets to the clipboard")
	apiBase := flag.String("api", cfg.ResolveAPIBaseURL(), "analyzer base URL")
	flag.Parse()

	if *jobPath == "" || *resumePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	jobText, err := os.ReadFile(*jobPath)
	if err != nil {
		log.Fatalf("❌ Failed to read job description: %v", err)
	}
	resumeText, err := os.ReadFile(*resumePath)
	if err != nil {
		log.Fatalf("❌ Failed to read resume: %v", err)
	}

	f := form.New(client.New(*apiBase))
	f.JobText = string(jobText)
	f.ResumeText = string(resumeText)
	f.UseLLM = *useLLM

	if err := f.Submit(); err != nil {
		if client.IsKind(err, client.KindNetwork) {
			log.Fatalf("❌ Analyzer unreachable at %s: %v", *apiBase, err)
		}
		log.Fatalf("❌ %s", f.ErrorMessage())
	}

	printView(os.Stdout, f.View())

	if *copyBullets {
		if err := f.CopyBullets(systemClipboard{}); err != nil {
			log.Fatalf("❌ Failed to copy bullets: %v", err)
		}
		log.Println("📋 Bullets copied to clipboard")
	}
}

func printView(w io.Writer, v form.View) {
	fmt.Fprintf(w, "Matched Skills: %s\n", v.MatchedSkills)
	fmt.Fprintf(w, "Missing Skills: %s\n", v.MissingSkills)
	fmt.Fprintln(w, "Tailored Bullets:")
	for _, b := range v.TailoredBullets {
		fmt.Fprintf(w, "  - %s\n", b)
	}
	if v.HasJaccard {
		fmt.Fprintf(w, "Match score (rough Jaccard): %s\n", v.Jaccard)
	}
	if v.HasSkillMatch {
		fmt.Fprintf(w, "Skill match: %s\n", v.SkillMatch)
	}
}
