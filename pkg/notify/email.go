package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

var severityColors = map[upstreamvuln.Severity]string{
	upstreamvuln.SeverityCritical: "#b71c1c",
	upstreamvuln.SeverityHigh:     "#e65100",
	upstreamvuln.SeverityMedium:   "#f9a825",
	upstreamvuln.SeverityLow:      "#2e7d32",
}

var emailTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;max-width:720px">
<div style="background:{{.Color}};color:#fff;padding:12px 16px">
  <h2 style="margin:0">{{.Severity}}: {{.VulnType}} in {{.Library}}</h2>
</div>
<table style="border-collapse:collapse;margin-top:12px">
  <tr><td style="padding:4px 12px 4px 0"><b>Project</b></td><td>{{.Project}}</td></tr>
  <tr><td style="padding:4px 12px 4px 0"><b>Library</b></td><td>{{.Library}}</td></tr>
  <tr><td style="padding:4px 12px 4px 0"><b>Type</b></td><td>{{.VulnType}}</td></tr>
  <tr><td style="padding:4px 12px 4px 0"><b>Severity</b></td><td>{{.Severity}}</td></tr>
  <tr><td style="padding:4px 12px 4px 0"><b>Fix commit</b></td><td>{{.Commit}}</td></tr>
  <tr><td style="padding:4px 12px 4px 0"><b>Affected versions</b></td><td>{{.AffectedVersions}}</td></tr>
</table>
<h3>Summary</h3>
<p>{{.Summary}}</p>
{{if .AffectedFunctions}}<h3>Affected functions</h3>
<ul>{{range .AffectedFunctions}}<li><code>{{.}}</code></li>{{end}}</ul>{{end}}
{{if .Strategy}}<h3>Reachability</h3>
<p>Verified via <b>{{.Strategy}}</b>{{if .CallChain}}:</p>
<p><code>{{.CallChain}}</code>{{end}}</p>{{end}}
</body>
</html>
`))

type emailData struct {
	Color             string
	Severity          upstreamvuln.Severity
	VulnType          string
	Library           string
	Project           string
	Commit            string
	AffectedVersions  string
	Summary           string
	AffectedFunctions []string
	Strategy          string
	CallChain         string
}

// renderEmail produces the subject and HTML body for one verified impact.
// Analysis fields are nullable on the row; a vuln reaching notification has
// them set, but missing values still render rather than panic.
func renderEmail(cv *ent.ClientVuln, vuln *ent.UpstreamVuln, lib *ent.Library, project *ent.Project) (subject, body string, err error) {
	severity := upstreamvuln.SeverityMedium
	if vuln.Severity != nil {
		severity = *vuln.Severity
	}
	data := emailData{
		Color:             severityColors[severity],
		Severity:          severity,
		VulnType:          strVal(vuln.VulnType),
		Library:           lib.Name,
		Project:           project.Name,
		Commit:            vuln.CommitSha,
		AffectedVersions:  strVal(vuln.AffectedVersions),
		Summary:           strVal(vuln.Summary),
		AffectedFunctions: vuln.AffectedFunctions,
	}
	if cv.ReachablePath != nil {
		if s, ok := cv.ReachablePath["strategy"].(string); ok {
			data.Strategy = s
		}
		if chain, ok := cv.ReachablePath["call_chain"].([]any); ok {
			parts := make([]string, 0, len(chain))
			for _, node := range chain {
				if s, ok := node.(string); ok {
					parts = append(parts, s)
				}
			}
			data.CallChain = strings.Join(parts, " -> ")
		}
	}

	var buf bytes.Buffer
	if err := emailTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render report email: %w", err)
	}
	subject = fmt.Sprintf("[VulnSentinel] %s %s in %s affects %s",
		severity, data.VulnType, lib.Name, project.Name)
	return subject, buf.String(), nil
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
