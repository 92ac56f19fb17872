package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/service"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func statusStyle(status domain.SessionStatus) lipgloss.Style {
	switch status {
	case domain.SessionCreated, domain.SessionReplaced:
		return okStyle
	case domain.SessionEmpty:
		return warnStyle
	default:
		return errorStyle
	}
}

func levelStyle(level string) lipgloss.Style {
	switch strings.ToUpper(level) {
	case "ERROR", "FATAL":
		return errorStyle
	case "WARN", "WARNING":
		return warnStyle
	case "DEBUG", "TRACE":
		return mutedStyle
	default:
		return lipgloss.NewStyle()
	}
}

func printReport(w io.Writer, report *domain.IngestReport) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Source %s (%s)", report.Source, report.SourceKind)))

	for _, res := range report.Sessions {
		fmt.Fprintf(w, "  %s %s", statusStyle(res.Status).Render(fmt.Sprintf("%-8s", res.Status)), res.Key)
		if res.SessionID != "" {
			fmt.Fprintf(w, " %s", mutedStyle.Render(res.SessionID))
		}
		fmt.Fprintf(w, "\n    files %d/%d, entries %d, bookmarks %d\n",
			res.FilesParsed, res.FilesTotal, res.Entries, res.Bookmarks)
		if res.ErrText != "" {
			fmt.Fprintf(w, "    %s\n", errorStyle.Render(res.ErrText))
		}
		for _, f := range res.Failures {
			fmt.Fprintf(w, "    %s %s: %s\n", warnStyle.Render(string(f.Stage)), f.Locator, f.Err)
		}
	}

	fmt.Fprintln(w, report.Summary())
}

func printCandidates(w io.Writer, candidates []domain.SessionCandidate) {
	if len(candidates) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No test sessions found"))
		return
	}

	for _, c := range candidates {
		state := okStyle.Render("new")
		if c.AlreadyLoaded {
			state = warnStyle.Render("loaded " + c.SessionID)
		}
		fmt.Fprintf(w, "%s  %d files  %s\n", headerStyle.Render(c.Key), c.FileCount, state)
	}
}

func printSessions(w io.Writer, sessions []domain.TestSession) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No sessions stored"))
		return
	}

	for _, s := range sessions {
		fmt.Fprintf(w, "%s %s\n", headerStyle.Render(s.Name), mutedStyle.Render(s.ID))
		fmt.Fprintf(w, "  %s %s, %d files, %d entries, ingested %s\n",
			s.SourceKind, s.SourcePath, s.FileCount, s.TotalEntries,
			s.LastIngestedAt.Local().Format("2006-01-02 15:04:05"))
	}
}

func printEntries(w io.Writer, page service.EntryPage) {
	for _, e := range page.Entries {
		level := levelStyle(e.Level).Render(fmt.Sprintf("%-7s", e.Level))
		prefix := fmt.Sprintf("%s %s", mutedStyle.Render(fmt.Sprintf("[%d:%d]", e.SourceFileIndex, e.LineNumber)), e.Timestamp)
		fmt.Fprintf(w, "%s %s %s\n", prefix, level, e.Message)
		if e.IsFailureMarker {
			fmt.Fprintf(w, "  %s\n", failureStyle.Render("failure"))
		}
		if e.Stack != nil {
			for _, line := range strings.Split(*e.Stack, "\n") {
				fmt.Fprintf(w, "  %s\n", mutedStyle.Render(line))
			}
		}
	}

	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d of %d entries", len(page.Entries), page.Total)))
}
