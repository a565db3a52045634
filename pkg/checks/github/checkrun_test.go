package github

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	gh "github.com/google/go-github/v75/github"

	"github.com/hafixo/github-checks-plugin/pkg/checks"
)

func TestCheckRunCreateInProgress(t *testing.T) {
	startedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	b, err := checks.NewDetailsBuilder("Coverage", checks.StatusInProgress)
	if err != nil {
		t.Fatalf("NewDetailsBuilder(): %v", err)
	}
	if err := b.WithStartedAt(startedAt); err != nil {
		t.Fatalf("WithStartedAt(): %v", err)
	}
	b.WithOutput(checks.NewOutputBuilder("Coverage Report", "Collecting coverage").Build())

	details, err := b.Build()
	if err != nil {
		t.Fatalf("Build(): %v", err)
	}

	want := &gh.CreateCheckRunOptions{
		Name:      "Coverage",
		HeadSHA:   "headSHA",
		Status:    gh.Ptr("in_progress"),
		StartedAt: &gh.Timestamp{Time: startedAt},
		Output: &gh.CheckRunOutput{
			Title:   gh.Ptr("Coverage Report"),
			Summary: gh.Ptr("Collecting coverage"),
		},
	}
	if diff := cmp.Diff(want, CheckRunCreate(details, "headSHA")); diff != "" {
		t.Errorf("CheckRunCreate() mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckRunCreateConcluded(t *testing.T) {
	startedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	completedAt := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	annotation, err := checks.NewAnnotation("src/app.go", 3, 3, checks.LevelFailure, "broken",
		checks.AnnotationTitle("lint"),
		checks.AnnotationColumns(2, 8),
	)
	if err != nil {
		t.Fatalf("NewAnnotation(): %v", err)
	}
	image, err := checks.NewImage("chart", "https://www.example.com/chart.png")
	if err != nil {
		t.Fatalf("NewImage(): %v", err)
	}
	action, err := checks.NewAction("Re-run", "rerun the failed check", "rerun")
	if err != nil {
		t.Fatalf("NewAction(): %v", err)
	}

	b, err := checks.NewDetailsBuilder("Coverage", checks.StatusCompleted)
	if err != nil {
		t.Fatalf("NewDetailsBuilder(): %v", err)
	}
	if err := b.WithDetailsURL("https://ci.example.com/job/42"); err != nil {
		t.Fatalf("WithDetailsURL(): %v", err)
	}
	if err := b.WithStartedAt(startedAt); err != nil {
		t.Fatalf("WithStartedAt(): %v", err)
	}
	if err := b.WithConclusion(checks.ConclusionFailure); err != nil {
		t.Fatalf("WithConclusion(): %v", err)
	}
	if err := b.WithCompletedAt(completedAt); err != nil {
		t.Fatalf("WithCompletedAt(): %v", err)
	}
	b.WithOutput(checks.NewOutputBuilder("Coverage Report", "Coverage dropped").
		WithText("see annotations").
		WithAnnotations([]checks.ChecksAnnotation{annotation}).
		WithImages([]checks.ChecksImage{image}).
		Build())
	b.WithActions([]checks.ChecksAction{action})

	details, err := b.Build()
	if err != nil {
		t.Fatalf("Build(): %v", err)
	}

	wantOutput := &gh.CheckRunOutput{
		Title:   gh.Ptr("Coverage Report"),
		Summary: gh.Ptr("Coverage dropped"),
		Text:    gh.Ptr("see annotations"),
		Annotations: []*gh.CheckRunAnnotation{{
			Path:            gh.Ptr("src/app.go"),
			StartLine:       gh.Ptr(3),
			EndLine:         gh.Ptr(3),
			StartColumn:     gh.Ptr(2),
			EndColumn:       gh.Ptr(8),
			AnnotationLevel: gh.Ptr("failure"),
			Message:         gh.Ptr("broken"),
			Title:           gh.Ptr("lint"),
		}},
		Images: []*gh.CheckRunImage{{
			Alt:      gh.Ptr("chart"),
			ImageURL: gh.Ptr("https://www.example.com/chart.png"),
		}},
	}
	wantActions := []*gh.CheckRunAction{{
		Label:       "Re-run",
		Description: "rerun the failed check",
		Identifier:  "rerun",
	}}

	if diff := cmp.Diff(&gh.CreateCheckRunOptions{
		Name:        "Coverage",
		HeadSHA:     "headSHA",
		DetailsURL:  gh.Ptr("https://ci.example.com/job/42"),
		Status:      gh.Ptr("completed"),
		Conclusion:  gh.Ptr("failure"),
		StartedAt:   &gh.Timestamp{Time: startedAt},
		CompletedAt: &gh.Timestamp{Time: completedAt},
		Output:      wantOutput,
		Actions:     wantActions,
	}, CheckRunCreate(details, "headSHA")); diff != "" {
		t.Errorf("CheckRunCreate() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(&gh.UpdateCheckRunOptions{
		Name:        "Coverage",
		DetailsURL:  gh.Ptr("https://ci.example.com/job/42"),
		Status:      gh.Ptr("completed"),
		Conclusion:  gh.Ptr("failure"),
		CompletedAt: &gh.Timestamp{Time: completedAt},
		Output:      wantOutput,
		Actions:     wantActions,
	}, CheckRunUpdate(details)); diff != "" {
		t.Errorf("CheckRunUpdate() mismatch (-want +got):\n%s", diff)
	}
}
