// Package checks models the lifecycle state of a check run: a status
// report attached to a revision of source code, built through validating
// builders and handed to a publisher once complete.
//
// Built values are immutable and safe to share; builders are not safe for
// concurrent use.
package checks
