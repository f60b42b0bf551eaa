package jobs

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const maxDetailRunes = 200

type RenderOptions struct {
	Now time.Time
}

type detailKind int

const (
	detailNone detailKind = iota
	detailError
	detailOutput
	detailEmptyOutput
)

// jobRow is the display form of one job, computed before any styling.
type jobRow struct {
	status  domain.JobStatus
	label   string
	command string
	meta    string
	kind    detailKind
	detail  string
}

func newJobRow(job domain.CommandJob, now time.Time) jobRow {
	row := jobRow{
		status:  job.Status,
		label:   statusLabel(job.Status),
		command: job.Command,
		meta:    fmt.Sprintf("id: %s  attempts: %d  submitted %s", job.ID, job.Attempts, formatAge(job.SubmittedAt, now)),
	}
	if elapsed := runDuration(job); elapsed != "" {
		row.meta += "  took " + elapsed
	}

	switch {
	case job.Error != "":
		row.kind, row.detail = detailError, truncate(job.Error)
	case job.Output != "":
		row.kind, row.detail = detailOutput, truncate(job.Output)
	case job.Finished():
		row.kind = detailEmptyOutput
	}

	return row
}

func (r jobRow) render(s styles) string {
	parts := []string{
		statusStyle(r.status, s).Render(r.label) + " " + s.command.Render(r.command),
		s.jobID.Render(r.meta),
	}

	switch r.kind {
	case detailError:
		parts = append(parts, s.failed.Render("error: ")+s.detail.Render(r.detail))
	case detailOutput:
		parts = append(parts, s.detail.Render("output: "+r.detail))
	case detailEmptyOutput:
		parts = append(parts, s.empty.Render("output: none"))
	case detailNone:
	}

	return s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func layoutListing(sections []string, s styles) string {
	lines := make([]string, 0, len(sections)+3)
	lines = append(lines,
		s.title.Render("Command Jobs"),
		s.header.Render(fmt.Sprintf("jobs: %d", len(sections))),
	)

	if len(sections) == 0 {
		lines = append(lines, s.empty.Render("No command jobs recorded yet."))
	}
	lines = append(lines, sections...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statusLabel(status domain.JobStatus) string {
	switch status {
	case domain.JobStatusQueued:
		return "[queued]"
	case domain.JobStatusRunning:
		return "[running]"
	case domain.JobStatusSucceeded:
		return "[ok]"
	case domain.JobStatusFailed:
		return "[failed]"
	case domain.JobStatusTimedOut:
		return "[timed out]"
	default:
		return "[" + string(status) + "]"
	}
}

func statusStyle(status domain.JobStatus, s styles) lipgloss.Style {
	switch status {
	case domain.JobStatusSucceeded:
		return s.succeeded
	case domain.JobStatusFailed:
		return s.failed
	case domain.JobStatusTimedOut:
		return s.timedOut
	case domain.JobStatusQueued, domain.JobStatusRunning:
		return s.pending
	default:
		return s.pending
	}
}

func formatAge(at, now time.Time) string {
	if at.IsZero() {
		return "at unknown time"
	}
	if now.IsZero() {
		return "at " + at.Format(time.RFC3339)
	}

	age := now.Sub(at)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return plural(int(age/time.Minute), "minute") + " ago"
	case age < 24*time.Hour:
		return plural(int(age/time.Hour), "hour") + " ago"
	default:
		return plural(int(math.Floor(age.Hours()/24)), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func runDuration(job domain.CommandJob) string {
	if job.StartedAt.IsZero() || job.FinishedAt.IsZero() || job.FinishedAt.Before(job.StartedAt) {
		return ""
	}
	return job.FinishedAt.Sub(job.StartedAt).Round(time.Millisecond).String()
}

func truncate(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= maxDetailRunes {
		return text
	}
	return string(runes[:maxDetailRunes-1]) + "…"
}
