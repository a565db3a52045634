package checks

import "errors"

// Error kinds reported by constructors and builders. Returned errors wrap
// one of these, so callers can classify failures with errors.Is.
var (
	// ErrBlank reports a required text value that is empty or whitespace.
	ErrBlank = errors.New("required value is blank")

	// ErrUnknownValue reports a value outside its closed vocabulary.
	ErrUnknownValue = errors.New("unknown value")

	// ErrZeroTime reports an explicitly provided zero timestamp.
	ErrZeroTime = errors.New("timestamp is zero")

	// ErrScheme reports a details URL that is not http or https.
	ErrScheme = errors.New("details URL must use http or https scheme")

	// ErrInvalidRange reports an annotation line or column range
	// violation.
	ErrInvalidRange = errors.New("invalid annotation range")

	// ErrNotAbsolute reports an image URL missing a scheme or host.
	ErrNotAbsolute = errors.New("URL must be absolute")

	// ErrNotCompleted reports a conclusion set while the builder's status
	// is not completed.
	ErrNotCompleted = errors.New("status must be completed when setting conclusion")

	// ErrNoConclusion reports a build whose other fields imply a
	// conclusion that was never set.
	ErrNoConclusion = errors.New("conclusion must be set")
)
