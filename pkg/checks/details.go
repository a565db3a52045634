package checks

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// ChecksDetails is the full state of a check run. The backend uses the name
// to correlate repeated publishes of the same check, so keep it unique
// within a run, e.g. "Coverage".
type ChecksDetails struct {
	name        string
	status      Status
	detailsURL  string
	startedAt   time.Time
	conclusion  Conclusion
	completedAt time.Time
	output      ChecksOutput
	hasOutput   bool
	actions     []ChecksAction
}

// Name returns the unique name of the check.
func (d ChecksDetails) Name() string { return d.name }

// Status returns the lifecycle stage of the check.
func (d ChecksDetails) Status() Status { return d.status }

// DetailsURL returns the URL of a site with full details of the check,
// empty when unset.
func (d ChecksDetails) DetailsURL() string { return d.detailsURL }

// StartedAt returns the time the check started.
func (d ChecksDetails) StartedAt() time.Time { return d.startedAt }

// Conclusion returns the conclusion of the check, ConclusionNone while the
// check has not concluded.
func (d ChecksDetails) Conclusion() Conclusion { return d.conclusion }

// CompletedAt returns the time the check completed, zero while the check
// has not concluded.
func (d ChecksDetails) CompletedAt() time.Time { return d.completedAt }

// Output returns the output of the check and whether one was set.
func (d ChecksDetails) Output() (ChecksOutput, bool) {
	if !d.hasOutput {
		return ChecksOutput{}, false
	}
	return d.output.Copy(), true
}

// Actions returns the actions of the check in order.
func (d ChecksDetails) Actions() []ChecksAction {
	return slices.Clone(d.actions)
}

// DetailsBuilder assembles a ChecksDetails, rejecting inconsistent field
// combinations at the earliest call that introduces them. Not safe for
// concurrent use. A failed call leaves the builder usable, so callers can
// correct the input and retry.
type DetailsBuilder struct {
	name        string
	status      Status
	detailsURL  string
	startedAt   time.Time
	conclusion  Conclusion
	completedAt time.Time
	output      *ChecksOutput
	actions     []ChecksAction

	clock clockwork.Clock
}

// NewDetailsBuilder creates a builder for a check with the given name and
// status. Name and status are fixed for the lifetime of the builder.
func NewDetailsBuilder(name string, status Status) (*DetailsBuilder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("check name: %w", ErrBlank)
	}
	if !status.valid() {
		return nil, fmt.Errorf("%w: status %q", ErrUnknownValue, status)
	}
	return &DetailsBuilder{
		name:   name,
		status: status,
		clock:  clockwork.NewRealClock(),
	}, nil
}

// WithClock replaces the time source used to default timestamps at build
// time. Intended for tests.
func (b *DetailsBuilder) WithClock(clock clockwork.Clock) {
	b.clock = clock
}

// WithDetailsURL sets the URL of a site with full details of the check.
// The URL must use the http or https scheme.
func (b *DetailsBuilder) WithDetailsURL(detailsURL string) error {
	u, err := url.Parse(detailsURL)
	if err != nil {
		return fmt.Errorf("parsing details URL %q: %w", detailsURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q", ErrScheme, detailsURL)
	}
	b.detailsURL = detailsURL
	return nil
}

// WithStartedAt sets the time the check started. If neither this nor a
// conclusion is set, the build time is used.
func (b *DetailsBuilder) WithStartedAt(startedAt time.Time) error {
	if startedAt.IsZero() {
		return fmt.Errorf("started at: %w", ErrZeroTime)
	}
	b.startedAt = startedAt
	return nil
}

// WithCompletedAt sets the time the check completed. If a conclusion is set
// and this is not, the build time is used.
func (b *DetailsBuilder) WithCompletedAt(completedAt time.Time) error {
	if completedAt.IsZero() {
		return fmt.Errorf("completed at: %w", ErrZeroTime)
	}
	b.completedAt = completedAt
	return nil
}

// WithConclusion sets the conclusion of the check. Only builders
// constructed with StatusCompleted accept a conclusion.
func (b *DetailsBuilder) WithConclusion(conclusion Conclusion) error {
	if b.status != StatusCompleted {
		return fmt.Errorf("%w, have %q", ErrNotCompleted, b.status)
	}
	if !conclusion.valid() {
		return fmt.Errorf("%w: conclusion %q", ErrUnknownValue, conclusion)
	}
	b.conclusion = conclusion
	return nil
}

// WithOutput sets the output of the check. The builder stores an
// independent copy, so the caller's value can keep evolving.
func (b *DetailsBuilder) WithOutput(output ChecksOutput) {
	copied := output.Copy()
	b.output = &copied
}

// WithActions replaces the actions of the check with a copy of the given
// slice, preserving order.
func (b *DetailsBuilder) WithActions(actions []ChecksAction) {
	b.actions = slices.Clone(actions)
}

// Build validates the cross-field invariants and assembles the immutable
// ChecksDetails. A check that has not concluded must not claim completion
// in any form; a concluded check gets its completion time defaulted.
func (b *DetailsBuilder) Build() (ChecksDetails, error) {
	startedAt := b.startedAt
	completedAt := b.completedAt

	if b.conclusion == ConclusionNone {
		if b.status == StatusCompleted {
			return ChecksDetails{}, fmt.Errorf("%w when status is completed", ErrNoConclusion)
		}
		if !completedAt.IsZero() {
			return ChecksDetails{}, fmt.Errorf("%w when completed at is provided", ErrNoConclusion)
		}
		if startedAt.IsZero() {
			startedAt = b.clock.Now()
		}
	} else if completedAt.IsZero() {
		completedAt = b.clock.Now()
	}

	details := ChecksDetails{
		name:        b.name,
		status:      b.status,
		detailsURL:  b.detailsURL,
		startedAt:   startedAt,
		conclusion:  b.conclusion,
		completedAt: completedAt,
		actions:     slices.Clone(b.actions),
	}
	if b.output != nil {
		details.output = b.output.Copy()
		details.hasOutput = true
	}
	return details, nil
}
