package errpipeline

import "strings"

// Issue is a single field-level validation failure.
type Issue struct {
	Path    []string
	Message string
	Code    string
	Keys    []string
}

// ValidationError is the multi-issue exception shape thrown by input
// validation. It implements error so it survives ordinary error plumbing
// until the normalizer picks it apart.
type ValidationError struct {
	Issues []Issue
}

func (v *ValidationError) Error() string {
	return "validation failed: " + joinIssues(v.Issues)
}

const issueSeparator = " | "

func joinIssues(issues []Issue) string {
	parts := make([]string, 0, len(issues))
	for _, is := range issues {
		path := strings.Join(is.Path, ".")
		if path == "" {
			parts = append(parts, is.Message)
			continue
		}
		parts = append(parts, path+": "+is.Message)
	}
	return strings.Join(parts, issueSeparator)
}

// FromValidation reduces a list of field issues to a single validation error.
// The per-field detail is diagnostic only; the user-facing message stays the
// fixed catalog one.
func FromValidation(issues []Issue) *Error {
	return Complete(Error{
		Kind:    KindValidationError,
		Details: joinIssues(issues),
	})
}
