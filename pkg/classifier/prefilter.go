package classifier

import (
	"regexp"
	"strings"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/ent/event"
)

var botAuthorRe = regexp.MustCompile(`(?i)(dependabot|renovate|greenkeeper|snyk-bot|github-actions|mergify|\[bot\]$)`)

// securityKeywordRe matches signals that must always go through the LLM
// path, whatever else the pre-filter would have decided.
var securityKeywordRe = regexp.MustCompile(`(?i)(` +
	`CVE-\d{4}-\d+|` +
	`CWE-\d+|` +
	`vulnerab|` +
	`exploit|` +
	`use.?after.?free|` +
	`double.?free|` +
	`buffer.?over(flow|read|write)|` +
	`out.?of.?bounds|` +
	`heap.?corruption|` +
	`stack.?smash|` +
	`auth.?bypass|` +
	`denial.?of.?service|` +
	`security)`)

var conventionalRe = regexp.MustCompile(`^([a-z]+)(\([^)]*\))?!?:`)

// conventionalLabels maps conventional-commit prefixes to deterministic
// labels. fix is deliberately normal_bugfix: promotion to security_bugfix is
// exclusively the LLM's call.
var conventionalLabels = map[string]struct {
	label      event.Classification
	confidence float64
}{
	"fix":      {event.ClassificationNormalBugfix, 0.70},
	"feat":     {event.ClassificationFeature, 0.80},
	"refactor": {event.ClassificationRefactor, 0.80},
	"docs":     {event.ClassificationOther, 0.85},
	"test":     {event.ClassificationOther, 0.85},
	"ci":       {event.ClassificationOther, 0.85},
	"chore":    {event.ClassificationOther, 0.85},
	"build":    {event.ClassificationOther, 0.85},
	"perf":     {event.ClassificationOther, 0.85},
	"style":    {event.ClassificationOther, 0.85},
}

// Prefilter classifies obvious events without an LLM call. ok=false means
// the event needs the LLM path. The pre-filter never returns
// security_bugfix: any security signal forces the LLM path instead.
func Prefilter(ev *ent.Event) (label event.Classification, confidence float64, ok bool) {
	if ev.Type == event.TypeTag {
		return event.ClassificationOther, 0.95, true
	}
	if botAuthorRe.MatchString(ev.Author) {
		return event.ClassificationOther, 0.90, true
	}
	if securityKeywordRe.MatchString(ev.Title + "\n" + ev.Message) {
		return "", 0, false
	}
	if m := conventionalRe.FindStringSubmatch(strings.TrimSpace(ev.Title)); m != nil {
		if entry, known := conventionalLabels[m[1]]; known {
			return entry.label, entry.confidence, true
		}
	}
	return "", 0, false
}
