package reachability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

// hunkHeaderRe captures the context text unified diff puts after the second
// @@ of a hunk header: the enclosing declaration at the hunk's location.
var hunkHeaderRe = regexp.MustCompile(`(?m)^@@ -\d+(?:,\d+)? \+\d+(?:,\d+)? @@ (.+)$`)

// funcIdentRe finds the identifier immediately before an opening parenthesis
// in a C/C++ declaration fragment.
var funcIdentRe = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*\(`)

var cSourceExts = map[string]bool{
	".c": true, ".cc": true, ".cpp": true, ".cxx": true,
	".h": true, ".hh": true, ".hpp": true, ".hxx": true,
}

type diffFetcher interface {
	Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error)
}

// functionsFromCommitDiff extracts enclosing function names from the @@ hunk
// headers of a commit's C/C++ file patches. Used as a fallback when the
// analyzer produced no affected_functions list.
func functionsFromCommitDiff(ctx context.Context, gh diffFetcher, slug, sha string) ([]string, error) {
	body, err := gh.Get(ctx, "/repos/"+slug+"/commits/"+url.PathEscape(sha), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch commit diff: %w", err)
	}
	var payload struct {
		Files []struct {
			Filename string `json:"filename"`
			Patch    string `json:"patch"`
		} `json:"files"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode commit diff: %w", err)
	}

	seen := map[string]bool{}
	var names []string
	for _, f := range payload.Files {
		if !cSourceExts[strings.ToLower(path.Ext(f.Filename))] {
			continue
		}
		for _, name := range functionsFromPatch(f.Patch) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names, nil
}

// functionsFromPatch extracts function identifiers from one file patch.
func functionsFromPatch(patch string) []string {
	var names []string
	for _, m := range hunkHeaderRe.FindAllStringSubmatch(patch, -1) {
		context := m[1]
		// The last identifier before a parenthesis is the function name;
		// earlier ones are return-type or namespace tokens.
		idents := funcIdentRe.FindAllStringSubmatch(context, -1)
		if len(idents) == 0 {
			continue
		}
		names = append(names, idents[len(idents)-1][1])
	}
	return names
}
