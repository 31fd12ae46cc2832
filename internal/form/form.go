// Package form holds the state of one analyze form: the three inputs, the
// in-flight flag, and whichever of result or error was written last.
package form

import (
	"errors"
	"strings"
	"sync"

	"alfredoptarigan/ai-tailor/internal/models"
)

const fallbackErrorMessage = "Something went wrong"

var ErrSubmitInFlight = errors.New("a submission is already in flight")

type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateResult
	StateError
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateResult:
		return "result"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Analyzer is the remote call a form submits to.
type Analyzer interface {
	Analyze(jobText, resumeText string, useLLM bool) (*models.AnalyzeResponse, error)
}

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

type Form struct {
	JobText    string
	ResumeText string
	UseLLM     bool

	analyzer Analyzer

	mu         sync.Mutex
	submitting bool
	result     *models.AnalyzeResponse
	errMsg     string
}

func New(analyzer Analyzer) *Form {
	return &Form{analyzer: analyzer}
}

// Submit sends the current inputs to the analyzer and blocks until it
// answers. A second Submit while one is pending returns ErrSubmitInFlight
// without issuing a request. The returned error is the analyzer's error, if
// any; it is also recorded as the form's error message.
func (f *Form) Submit() error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.submitting = true
	f.errMsg = ""
	jobText, resumeText, useLLM := f.JobText, f.ResumeText, f.UseLLM
	f.mu.Unlock()

	resp, err := f.analyzer.Analyze(jobText, resumeText, useLLM)
	if err != nil {
		f.reject(err)
		return err
	}

	f.resolve(resp)
	return nil
}

func (f *Form) resolve(resp *models.AnalyzeResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.result = resp
	f.errMsg = ""
	f.submitting = false
}

func (f *Form) reject(err error) {
	msg := err.Error()
	if strings.TrimSpace(msg) == "" {
		msg = fallbackErrorMessage
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.result = nil
	f.errMsg = msg
	f.submitting = false
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.submitting:
		return StateSubmitting
	case f.errMsg != "":
		return StateError
	case f.result != nil:
		return StateResult
	default:
		return StateEditing
	}
}

func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

func (f *Form) Result() *models.AnalyzeResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

func (f *Form) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// BulletsText is the tailored bullets joined by newlines, or "" without a
// result.
func (f *Form) BulletsText() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.result == nil {
		return ""
	}
	return strings.Join(f.result.TailoredBullets, "\n")
}

// CopyBullets writes BulletsText to the clipboard. Nothing is written when
// there is no result.
func (f *Form) CopyBullets(c Clipboard) error {
	if f.Result() == nil {
		return nil
	}
	return c.WriteAll(f.BulletsText())
}
