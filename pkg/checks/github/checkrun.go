// Package github maps built check details onto the go-github option
// structs a publisher hands to the checks API. It performs no I/O.
package github

import (
	gh "github.com/google/go-github/v75/github"

	"github.com/hafixo/github-checks-plugin/pkg/checks"
)

// CheckRunCreate converts details into options for creating a check run on
// the given head SHA.
func CheckRunCreate(details checks.ChecksDetails, headSHA string) *gh.CreateCheckRunOptions {
	opts := &gh.CreateCheckRunOptions{
		Name:    details.Name(),
		HeadSHA: headSHA,
		Status:  gh.Ptr(string(details.Status())),
	}
	if u := details.DetailsURL(); u != "" {
		opts.DetailsURL = gh.Ptr(u)
	}
	if t := details.StartedAt(); !t.IsZero() {
		opts.StartedAt = &gh.Timestamp{Time: t}
	}
	if c := details.Conclusion(); c != checks.ConclusionNone {
		opts.Conclusion = gh.Ptr(string(c))
	}
	if t := details.CompletedAt(); !t.IsZero() {
		opts.CompletedAt = &gh.Timestamp{Time: t}
	}
	if output, ok := details.Output(); ok {
		opts.Output = checkRunOutput(output)
	}
	opts.Actions = checkRunActions(details.Actions())
	return opts
}

// CheckRunUpdate converts details into options for updating an existing
// check run. The head SHA and start time are fixed at creation and are not
// part of an update.
func CheckRunUpdate(details checks.ChecksDetails) *gh.UpdateCheckRunOptions {
	opts := &gh.UpdateCheckRunOptions{
		Name:   details.Name(),
		Status: gh.Ptr(string(details.Status())),
	}
	if u := details.DetailsURL(); u != "" {
		opts.DetailsURL = gh.Ptr(u)
	}
	if c := details.Conclusion(); c != checks.ConclusionNone {
		opts.Conclusion = gh.Ptr(string(c))
	}
	if t := details.CompletedAt(); !t.IsZero() {
		opts.CompletedAt = &gh.Timestamp{Time: t}
	}
	if output, ok := details.Output(); ok {
		opts.Output = checkRunOutput(output)
	}
	opts.Actions = checkRunActions(details.Actions())
	return opts
}

func checkRunOutput(output checks.ChecksOutput) *gh.CheckRunOutput {
	out := &gh.CheckRunOutput{
		Title:   gh.Ptr(output.Title()),
		Summary: gh.Ptr(output.Summary()),
	}
	if text := output.Text(); text != "" {
		out.Text = gh.Ptr(text)
	}
	for _, a := range output.Annotations() {
		ann := &gh.CheckRunAnnotation{
			Path:            gh.Ptr(a.Path()),
			StartLine:       gh.Ptr(a.StartLine()),
			EndLine:         gh.Ptr(a.EndLine()),
			AnnotationLevel: gh.Ptr(string(a.Level())),
			Message:         gh.Ptr(a.Message()),
		}
		if t := a.Title(); t != "" {
			ann.Title = gh.Ptr(t)
		}
		if d := a.RawDetails(); d != "" {
			ann.RawDetails = gh.Ptr(d)
		}
		if c := a.StartColumn(); c != 0 {
			ann.StartColumn = gh.Ptr(c)
		}
		if c := a.EndColumn(); c != 0 {
			ann.EndColumn = gh.Ptr(c)
		}
		out.Annotations = append(out.Annotations, ann)
	}
	for _, i := range output.Images() {
		img := &gh.CheckRunImage{
			Alt:      gh.Ptr(i.Alt()),
			ImageURL: gh.Ptr(i.URL()),
		}
		if c := i.Caption(); c != "" {
			img.Caption = gh.Ptr(c)
		}
		out.Images = append(out.Images, img)
	}
	return out
}

func checkRunActions(actions []checks.ChecksAction) []*gh.CheckRunAction {
	var out []*gh.CheckRunAction
	for _, a := range actions {
		out = append(out, &gh.CheckRunAction{
			Label:       a.Label(),
			Description: a.Description(),
			Identifier:  a.Identifier(),
		})
	}
	return out
}
