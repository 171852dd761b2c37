package domain

import "encoding/json"

// Violation categories. Messages are the human-facing surface; the category
// is the stable handle tests and tooling key on.
const (
	CategorySyntax   = "syntax"
	CategorySchema   = "schema"
	CategoryFormat   = "format"
	CategoryIO       = "io"
	CategoryInternal = "internal"
)

// Violation is one reported defect in a document.
type Violation struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// FileResult is the validation outcome for one candidate file.
type FileResult struct {
	File       string
	Violations []Violation
}

// Success reports whether the file passed: true iff there are no violations.
func (r FileResult) Success() bool { return len(r.Violations) == 0 }

// Messages returns the violation messages in order.
func (r FileResult) Messages() []string {
	if len(r.Violations) == 0 {
		return nil
	}
	msgs := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		msgs[i] = v.Message
	}
	return msgs
}

// fileResultJSON is the wire shape of a report record: either
// {"file": ..., "success": true} or {"file": ..., "errors": [...]}.
type fileResultJSON struct {
	File    string   `json:"file"`
	Success bool     `json:"success,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func (r FileResult) MarshalJSON() ([]byte, error) {
	if r.Success() {
		return json.Marshal(fileResultJSON{File: r.File, Success: true})
	}
	return json.Marshal(fileResultJSON{File: r.File, Errors: r.Messages()})
}

func (r *FileResult) UnmarshalJSON(data []byte) error {
	var aux fileResultJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.File = aux.File
	r.Violations = nil
	for _, msg := range aux.Errors {
		r.Violations = append(r.Violations, Violation{Message: msg})
	}
	return nil
}

// Report is an ordered sequence of per-file results, one per candidate file,
// preserving input order. An empty report means "no candidate files" and is
// an overall success.
type Report []FileResult

// Success reports whether every file in the report passed.
func (r Report) Success() bool {
	for _, res := range r {
		if !res.Success() {
			return false
		}
	}
	return true
}

// Failures returns the number of files with at least one violation.
func (r Report) Failures() int {
	n := 0
	for _, res := range r {
		if !res.Success() {
			n++
		}
	}
	return n
}

// TotalViolations returns the number of violations across all files.
func (r Report) TotalViolations() int {
	n := 0
	for _, res := range r {
		n += len(res.Violations)
	}
	return n
}
