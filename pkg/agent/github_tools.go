package agent

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/vulnsentinel/vulnsentinel/pkg/github"
)

// RepoTools builds the read-only GitHub tool surface bound to one repository.
// slug is "owner/name". Every tool reports failures as results, not errors, so
// the model can recover (try another ref, give up gracefully).
func RepoTools(gh *github.Client, slug string) []Tool {
	base := "/repos/" + slug

	fetch := func(ctx context.Context, path string, params url.Values) (string, bool) {
		body, err := gh.Get(ctx, path, params)
		if err != nil {
			return fmt.Sprintf("error: %v", err), true
		}
		return string(body), false
	}

	return []Tool{
		{
			Name:        "fetch_commit",
			Description: "Fetch a commit by SHA, including its message, author, and file-level diff.",
			Parameters: schema(map[string]string{
				"sha": "full or abbreviated commit SHA",
			}, "sha"),
			Run: func(ctx context.Context, args map[string]any) (string, bool) {
				sha, ok := stringArg(args, "sha")
				if !ok {
					return "error: missing required argument: sha", true
				}
				return fetch(ctx, base+"/commits/"+url.PathEscape(sha), nil)
			},
		},
		{
			Name:        "fetch_pr",
			Description: "Fetch a pull request by number: title, body, state, merge info.",
			Parameters: schema(map[string]string{
				"number": "pull request number",
			}, "number"),
			Run: func(ctx context.Context, args map[string]any) (string, bool) {
				n, ok := intArg(args, "number")
				if !ok {
					return "error: missing required argument: number", true
				}
				return fetch(ctx, fmt.Sprintf("%s/pulls/%d", base, n), nil)
			},
		},
		{
			Name:        "fetch_pr_files",
			Description: "List the files changed by a pull request, with per-file patches.",
			Parameters: schema(map[string]string{
				"number": "pull request number",
			}, "number"),
			Run: func(ctx context.Context, args map[string]any) (string, bool) {
				n, ok := intArg(args, "number")
				if !ok {
					return "error: missing required argument: number", true
				}
				return fetch(ctx, fmt.Sprintf("%s/pulls/%d/files", base, n), nil)
			},
		},
		{
			Name:        "fetch_issue",
			Description: "Fetch an issue by number: title, body, labels, state.",
			Parameters: schema(map[string]string{
				"number": "issue number",
			}, "number"),
			Run: func(ctx context.Context, args map[string]any) (string, bool) {
				n, ok := intArg(args, "number")
				if !ok {
					return "error: missing required argument: number", true
				}
				return fetch(ctx, fmt.Sprintf("%s/issues/%d", base, n), nil)
			},
		},
		{
			Name:        "fetch_file",
			Description: "Fetch the contents of a file at a given ref (branch, tag, or commit SHA).",
			Parameters: schema(map[string]string{
				"path": "file path within the repository",
				"ref":  "branch, tag, or commit SHA; defaults to the default branch",
			}, "path"),
			Run: func(ctx context.Context, args map[string]any) (string, bool) {
				path, ok := stringArg(args, "path")
				if !ok {
					return "error: missing required argument: path", true
				}
				params := url.Values{}
				if ref, ok := stringArg(args, "ref"); ok {
					params.Set("ref", ref)
				}
				body, err := gh.Get(ctx, base+"/contents/"+escapePath(path), params)
				if err != nil {
					return fmt.Sprintf("error: %v", err), true
				}
				content, err := decodeContents(body)
				if err != nil {
					return fmt.Sprintf("error: %v", err), true
				}
				return content, false
			},
		},
	}
}

// decodeContents extracts the base64-encoded file body from a GitHub
// contents response.
func decodeContents(body json.RawMessage) (string, error) {
	var payload struct {
		Type     string `json:"type"`
		Encoding string `json:"encoding"`
		Content  string `json:"content"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode contents response: %w", err)
	}
	if payload.Type != "" && payload.Type != "file" {
		return "", fmt.Errorf("path is a %s, not a file", payload.Type)
	}
	if payload.Encoding != "base64" {
		return payload.Content, nil
	}
	// GitHub wraps base64 content with newlines.
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(payload.Content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("decode file content: %w", err)
	}
	return string(raw), nil
}

// escapePath escapes each segment of a repo-relative path, keeping slashes.
func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

// schema builds a flat JSON Schema object for tool parameters. Integer-typed
// properties are recognized by name.
func schema(props map[string]string, required ...string) json.RawMessage {
	properties := make(map[string]map[string]string, len(props))
	for name, desc := range props {
		typ := "string"
		if name == "number" {
			typ = "integer"
		}
		properties[name] = map[string]string{"type": typ, "description": desc}
	}
	doc := map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
	out, _ := json.Marshal(doc)
	return out
}

func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func intArg(args map[string]any, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n, true
		}
	}
	return 0, false
}
