package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/agentage/agentage/pkg/agentage/agentfile"
	"github.com/agentage/agentage/pkg/agentage/api"
)

func WriteAgentFileTable(w io.Writer, files []*agentfile.File) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tSCOPE\tVERSION\tMODEL\tDESCRIPTION")
	for _, f := range files {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			f.Manifest.Name, f.Scope, orDash(f.Manifest.Version), orDash(f.Manifest.Model), truncate(f.Description(), 60))
	}
	_ = tw.Flush()
}

func WriteAgentFileTableWide(w io.Writer, files []*agentfile.File) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tSCOPE\tVERSION\tMODEL\tTOOLS\tPATH\tDESCRIPTION")
	for _, f := range files {
		tools := "-"
		if len(f.Manifest.Tools) > 0 {
			tools = strings.Join(f.Manifest.Tools, ",")
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			f.Manifest.Name, f.Scope, orDash(f.Manifest.Version), orDash(f.Manifest.Model), tools, f.Path, truncate(f.Description(), 60))
	}
	_ = tw.Flush()
}

func WriteAgentTable(w io.Writer, agents []api.Agent) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tVERSION\tAUTHOR\tDOWNLOADS\tUPDATED")
	for _, a := range agents {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			a.Name, orDash(a.Version), orDash(a.Author.DisplayName()), a.Downloads, formatTime(a.UpdatedAt))
	}
	_ = tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}
