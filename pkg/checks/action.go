package checks

import (
	"fmt"
	"strings"
)

// Field limits imposed by the checks API.
const (
	maxActionLabel       = 20
	maxActionDescription = 40
	maxActionIdentifier  = 20
)

// ChecksAction describes an action a user can trigger on a check run, such
// as a re-run. The identifier is opaque to the backend and is echoed back
// when the action is requested.
type ChecksAction struct {
	label       string
	description string
	identifier  string
}

// NewAction creates an action descriptor, enforcing the API's length caps.
func NewAction(label, description, identifier string) (ChecksAction, error) {
	if strings.TrimSpace(label) == "" {
		return ChecksAction{}, fmt.Errorf("action label: %w", ErrBlank)
	}
	if len(label) > maxActionLabel {
		return ChecksAction{}, fmt.Errorf("action label %q exceeds %d characters", label, maxActionLabel)
	}
	if len(description) > maxActionDescription {
		return ChecksAction{}, fmt.Errorf("action description %q exceeds %d characters", description, maxActionDescription)
	}
	if len(identifier) > maxActionIdentifier {
		return ChecksAction{}, fmt.Errorf("action identifier %q exceeds %d characters", identifier, maxActionIdentifier)
	}
	return ChecksAction{
		label:       label,
		description: description,
		identifier:  identifier,
	}, nil
}

// Label returns the text shown on the action button.
func (a ChecksAction) Label() string { return a.label }

// Description returns the short explanation of the action.
func (a ChecksAction) Description() string { return a.description }

// Identifier returns the opaque identifier echoed back on request.
func (a ChecksAction) Identifier() string { return a.identifier }
