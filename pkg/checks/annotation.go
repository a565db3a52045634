package checks

import (
	"fmt"
	"strings"
)

// ChecksAnnotation pins a message with a severity level to a line range of
// a file in the checked revision.
type ChecksAnnotation struct {
	path        string
	startLine   int
	endLine     int
	level       AnnotationLevel
	message     string
	title       string
	rawDetails  string
	startColumn int
	endColumn   int
}

// AnnotationOption sets an optional field of a ChecksAnnotation.
type AnnotationOption func(*ChecksAnnotation)

// AnnotationTitle sets the title of the annotation.
func AnnotationTitle(title string) AnnotationOption {
	return func(a *ChecksAnnotation) {
		a.title = title
	}
}

// AnnotationRawDetails attaches raw details (e.g. a stack trace) to the
// annotation.
func AnnotationRawDetails(rawDetails string) AnnotationOption {
	return func(a *ChecksAnnotation) {
		a.rawDetails = rawDetails
	}
}

// AnnotationColumns narrows the annotation to a column range. Columns may
// only be set when the annotation spans a single line; zero means unset.
func AnnotationColumns(start, end int) AnnotationOption {
	return func(a *ChecksAnnotation) {
		a.startColumn = start
		a.endColumn = end
	}
}

// NewAnnotation creates an annotation for the given path and line range.
func NewAnnotation(path string, startLine, endLine int, level AnnotationLevel, message string, opts ...AnnotationOption) (ChecksAnnotation, error) {
	if strings.TrimSpace(path) == "" {
		return ChecksAnnotation{}, fmt.Errorf("annotation path: %w", ErrBlank)
	}
	if strings.TrimSpace(message) == "" {
		return ChecksAnnotation{}, fmt.Errorf("annotation message: %w", ErrBlank)
	}
	if !level.valid() {
		return ChecksAnnotation{}, fmt.Errorf("%w: annotation level %q", ErrUnknownValue, level)
	}
	if startLine > endLine {
		return ChecksAnnotation{}, fmt.Errorf("%w: start line %d is after end line %d", ErrInvalidRange, startLine, endLine)
	}

	ann := ChecksAnnotation{
		path:      path,
		startLine: startLine,
		endLine:   endLine,
		level:     level,
		message:   message,
	}
	for _, opt := range opts {
		opt(&ann)
	}
	if (ann.startColumn != 0 || ann.endColumn != 0) && startLine != endLine {
		return ChecksAnnotation{}, fmt.Errorf("%w: columns require start line %d to equal end line %d", ErrInvalidRange, startLine, endLine)
	}
	return ann, nil
}

// Path returns the file path the annotation points at.
func (a ChecksAnnotation) Path() string { return a.path }

// StartLine returns the first annotated line.
func (a ChecksAnnotation) StartLine() int { return a.startLine }

// EndLine returns the last annotated line.
func (a ChecksAnnotation) EndLine() int { return a.endLine }

// Level returns the severity of the annotation.
func (a ChecksAnnotation) Level() AnnotationLevel { return a.level }

// Message returns the annotation message.
func (a ChecksAnnotation) Message() string { return a.message }

// Title returns the title of the annotation, empty when unset.
func (a ChecksAnnotation) Title() string { return a.title }

// RawDetails returns the raw details of the annotation, empty when unset.
func (a ChecksAnnotation) RawDetails() string { return a.rawDetails }

// StartColumn returns the first annotated column, zero when unset.
func (a ChecksAnnotation) StartColumn() int { return a.startColumn }

// EndColumn returns the last annotated column, zero when unset.
func (a ChecksAnnotation) EndColumn() int { return a.endColumn }
