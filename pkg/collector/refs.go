package collector

import "regexp"

var (
	fixesRe   = regexp.MustCompile(`(?i)\b(?:fix(?:es|ed)?|close[sd]?|resolve[sd]?)\s*:?\s*#(\d+)`)
	titlePRRe = regexp.MustCompile(`\(#(\d+)\)`)
)

// extractIssueRef finds a "Fixes #N" style reference anywhere in the
// combined title and message text.
func extractIssueRef(title, message string) string {
	if m := fixesRe.FindStringSubmatch(title + "\n" + message); m != nil {
		return m[1]
	}
	return ""
}

// extractPRRef finds an inline "(#N)" reference. Only the title is
// consulted: squash-merge commits carry the PR number there, while message
// bodies mention unrelated PRs too often.
func extractPRRef(title string) string {
	if m := titlePRRe.FindStringSubmatch(title); m != nil {
		return m[1]
	}
	return ""
}
