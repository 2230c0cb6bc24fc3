package github

import (
	"fmt"
	"net/url"
	"strings"
)

// Slug extracts "owner/name" from a repository URL such as
// https://github.com/owner/name or git@github.com:owner/name.git.
func Slug(repoURL string) (string, error) {
	raw := strings.TrimSuffix(strings.TrimSpace(repoURL), ".git")

	if strings.HasPrefix(raw, "git@") {
		if _, after, ok := strings.Cut(raw, ":"); ok {
			raw = "https://github.com/" + after
		}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("github: parse repo url %q: %w", repoURL, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("github: repo url %q has no owner/name path", repoURL)
	}
	return parts[0] + "/" + parts[1], nil
}
