package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
	"github.com/vulnsentinel/vulnsentinel/pkg/services"
)

// canonicalVulnTypes is the closed set the analyzer prompt asks for.
var canonicalVulnTypes = map[string]bool{
	"buffer_overflow":   true,
	"use_after_free":    true,
	"integer_overflow":  true,
	"null_deref":        true,
	"injection":         true,
	"auth_bypass":       true,
	"info_leak":         true,
	"dos":               true,
	"race_condition":    true,
	"memory_corruption": true,
	"other":             true,
}

// vulnTypeAliases normalizes near-miss labels the model emits.
var vulnTypeAliases = map[string]string{
	"heap_overflow":          "buffer_overflow",
	"stack_overflow":         "buffer_overflow",
	"buffer_overread":        "buffer_overflow",
	"buffer_over_read":       "buffer_overflow",
	"out_of_bounds":          "buffer_overflow",
	"out_of_bounds_read":     "buffer_overflow",
	"out_of_bounds_write":    "buffer_overflow",
	"oob_read":               "buffer_overflow",
	"oob_write":              "buffer_overflow",
	"uaf":                    "use_after_free",
	"double_free":            "memory_corruption",
	"null_pointer":           "null_deref",
	"null_pointer_deref":     "null_deref",
	"nullptr_dereference":    "null_deref",
	"sql_injection":          "injection",
	"command_injection":      "injection",
	"format_string":          "injection",
	"authentication_bypass":  "auth_bypass",
	"authorization_bypass":   "auth_bypass",
	"information_leak":       "info_leak",
	"information_disclosure": "info_leak",
	"memory_leak":            "info_leak",
	"denial_of_service":      "dos",
	"resource_exhaustion":    "dos",
	"infinite_loop":          "dos",
	"data_race":              "race_condition",
	"toctou":                 "race_condition",
}

var severityAliases = map[string]upstreamvuln.Severity{
	"critical":   upstreamvuln.SeverityCritical,
	"high":       upstreamvuln.SeverityHigh,
	"important":  upstreamvuln.SeverityHigh,
	"medium":     upstreamvuln.SeverityMedium,
	"moderate":   upstreamvuln.SeverityMedium,
	"low":        upstreamvuln.SeverityLow,
	"minor":      upstreamvuln.SeverityLow,
	"negligible": upstreamvuln.SeverityLow,
}

type rawVuln struct {
	VulnType          string         `json:"vuln_type"`
	Severity          string         `json:"severity"`
	AffectedVersions  string         `json:"affected_versions"`
	Summary           string         `json:"summary"`
	Reasoning         string         `json:"reasoning"`
	UpstreamPoc       map[string]any `json:"upstream_poc"`
	AffectedFunctions []string       `json:"affected_functions"`
}

// ParseAnalysis normalizes the analyzer's final answer to a list of
// analyses. The model may return a single JSON object or a JSON array;
// either may be wrapped in prose. Unknown vuln types become other, unknown
// severities medium.
func ParseAnalysis(content string) ([]services.VulnAnalysis, error) {
	raw, err := extractJSON(content)
	if err != nil {
		return nil, err
	}

	var items []rawVuln
	if strings.HasPrefix(string(raw), "[") {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decode analysis array: %w", err)
		}
	} else {
		var single rawVuln
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, fmt.Errorf("decode analysis object: %w", err)
		}
		items = []rawVuln{single}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("analysis answer is empty")
	}

	out := make([]services.VulnAnalysis, 0, len(items))
	for i, item := range items {
		if item.Summary == "" {
			return nil, fmt.Errorf("analysis %d has no summary", i+1)
		}
		out = append(out, services.VulnAnalysis{
			VulnType:          normalizeVulnType(item.VulnType),
			Severity:          normalizeSeverity(item.Severity),
			AffectedVersions:  item.AffectedVersions,
			Summary:           item.Summary,
			Reasoning:         item.Reasoning,
			UpstreamPoc:       item.UpstreamPoc,
			AffectedFunctions: item.AffectedFunctions,
		})
	}
	return out, nil
}

func normalizeVulnType(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(raw, "-", "_")))
	if canonicalVulnTypes[normalized] {
		return normalized
	}
	if mapped, ok := vulnTypeAliases[normalized]; ok {
		return mapped
	}
	return "other"
}

func normalizeSeverity(raw string) upstreamvuln.Severity {
	if mapped, ok := severityAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return mapped
	}
	return upstreamvuln.SeverityMedium
}

// extractJSON finds the first balanced top-level JSON object or array in
// text that may be wrapped in prose or a code fence.
func extractJSON(content string) (json.RawMessage, error) {
	objIdx := strings.IndexByte(content, '{')
	arrIdx := strings.IndexByte(content, '[')
	start := objIdx
	if start < 0 || (arrIdx >= 0 && arrIdx < start) {
		start = arrIdx
	}
	if start < 0 {
		return nil, fmt.Errorf("no JSON value in content")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		ch := content[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				candidate := content[start : i+1]
				if !json.Valid([]byte(candidate)) {
					return nil, fmt.Errorf("malformed JSON in content")
				}
				return json.RawMessage(candidate), nil
			}
		}
	}
	return nil, fmt.Errorf("unbalanced JSON in content")
}
