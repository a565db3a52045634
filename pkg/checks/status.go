package checks

// Docs for Check Run API: https://docs.github.com/en/rest/checks/runs?apiVersion=2022-11-28

// Status is the lifecycle stage of a check run.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) valid() bool {
	switch s {
	case StatusQueued, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Conclusion is the terminal outcome of a completed check run.
type Conclusion string

const (
	// ConclusionNone is the zero value and means the check has not
	// concluded yet.
	ConclusionNone Conclusion = ""

	ConclusionActionRequired Conclusion = "action_required"
	ConclusionCancelled      Conclusion = "cancelled"
	ConclusionFailure        Conclusion = "failure"
	// ConclusionNeutral is sufficient to pass a required check.
	ConclusionNeutral  Conclusion = "neutral"
	ConclusionSuccess  Conclusion = "success"
	ConclusionTimedOut Conclusion = "timed_out"
	// ConclusionSkipped is not sufficient to pass a required check.
	ConclusionSkipped Conclusion = "skipped"
	ConclusionStale   Conclusion = "stale"
)

func (c Conclusion) valid() bool {
	switch c {
	case ConclusionActionRequired, ConclusionCancelled, ConclusionFailure,
		ConclusionNeutral, ConclusionSuccess, ConclusionTimedOut,
		ConclusionSkipped, ConclusionStale:
		return true
	}
	return false
}

// AnnotationLevel is the severity of a source annotation.
type AnnotationLevel string

const (
	LevelNotice  AnnotationLevel = "notice"
	LevelWarning AnnotationLevel = "warning"
	LevelFailure AnnotationLevel = "failure"
)

func (l AnnotationLevel) valid() bool {
	switch l {
	case LevelNotice, LevelWarning, LevelFailure:
		return true
	}
	return false
}
