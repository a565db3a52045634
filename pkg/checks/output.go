package checks

import (
	"fmt"
	"slices"
	"strings"
)

const (
	maxOutputTextLength = 65536
	truncationMessage   = "\n\n⚠️ _Output has been truncated_"
)

// ChecksOutput is the structured report body of a check run: a title, a
// summary, optional free text, and ordered annotations and images.
type ChecksOutput struct {
	title       string
	summary     string
	text        string
	annotations []ChecksAnnotation
	images      []ChecksImage
}

// Title returns the title of the output.
func (o ChecksOutput) Title() string { return o.title }

// Summary returns the summary of the output.
func (o ChecksOutput) Summary() string { return o.summary }

// Text returns the free-form text of the output, empty when unset.
func (o ChecksOutput) Text() string { return o.text }

// Annotations returns the annotations of the output in order.
func (o ChecksOutput) Annotations() []ChecksAnnotation {
	return slices.Clone(o.annotations)
}

// Images returns the images of the output in order.
func (o ChecksOutput) Images() []ChecksImage {
	return slices.Clone(o.images)
}

// Copy returns an independent deep copy of the output. Mutating anything
// the original was built from never affects the copy.
func (o ChecksOutput) Copy() ChecksOutput {
	o.annotations = slices.Clone(o.annotations)
	o.images = slices.Clone(o.images)
	return o
}

// OutputBuilder assembles a ChecksOutput. Not safe for concurrent use.
type OutputBuilder struct {
	title       string
	summary     string
	text        strings.Builder
	annotations []ChecksAnnotation
	images      []ChecksImage
}

// NewOutputBuilder creates a builder with the given title and summary. The
// summary supports markdown and may be large; the backend truncates what it
// cannot store.
func NewOutputBuilder(title, summary string) *OutputBuilder {
	return &OutputBuilder{
		title:   title,
		summary: summary,
	}
}

// WithText replaces the free-form text of the output.
func (b *OutputBuilder) WithText(text string) *OutputBuilder {
	b.text.Reset()
	b.text.WriteString(text)
	return b
}

// Writef appends a formatted line to the output text.
//
// If the text exceeds the maximum length, it is truncated and a message is
// appended.
func (b *OutputBuilder) Writef(format string, args ...any) *OutputBuilder {
	if b.text.Len() <= maxOutputTextLength {
		b.text.WriteString(fmt.Sprintf(format, args...))
		b.text.WriteRune('\n')
	}

	if b.text.Len() > maxOutputTextLength {
		out := b.text.String()
		out = out[:maxOutputTextLength-len(truncationMessage)]
		out += truncationMessage
		b.text = strings.Builder{}
		b.text.WriteString(out)
	}
	return b
}

// WithAnnotations replaces the annotations of the output with a copy of the
// given slice, preserving order.
func (b *OutputBuilder) WithAnnotations(annotations []ChecksAnnotation) *OutputBuilder {
	b.annotations = slices.Clone(annotations)
	return b
}

// WithImages replaces the images of the output with a copy of the given
// slice, preserving order.
func (b *OutputBuilder) WithImages(images []ChecksImage) *OutputBuilder {
	b.images = slices.Clone(images)
	return b
}

// Build assembles the output. There is no cross-field validation to fail.
func (b *OutputBuilder) Build() ChecksOutput {
	return ChecksOutput{
		title:       b.title,
		summary:     b.summary,
		text:        b.text.String(),
		annotations: slices.Clone(b.annotations),
		images:      slices.Clone(b.images),
	}
}
