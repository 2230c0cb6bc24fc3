package classifier

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnsentinel/vulnsentinel/ent"
	"github.com/vulnsentinel/vulnsentinel/ent/event"
)

func TestPrefilter(t *testing.T) {
	tests := []struct {
		name           string
		ev             *ent.Event
		wantLabel      event.Classification
		wantConfidence float64
		wantOK         bool
	}{
		{
			name:           "tag is other",
			ev:             &ent.Event{Type: event.TypeTag, Title: "v1.2.3"},
			wantLabel:      event.ClassificationOther,
			wantConfidence: 0.95,
			wantOK:         true,
		},
		{
			name:           "dependabot commit is noise",
			ev:             &ent.Event{Type: event.TypeCommit, Author: "dependabot[bot]", Title: "bump dep"},
			wantLabel:      event.ClassificationOther,
			wantConfidence: 0.90,
			wantOK:         true,
		},
		{
			name:           "renovate author",
			ev:             &ent.Event{Type: event.TypeCommit, Author: "renovate-bot", Title: "update deps"},
			wantLabel:      event.ClassificationOther,
			wantConfidence: 0.90,
			wantOK:         true,
		},
		{
			name:           "conventional fix",
			ev:             &ent.Event{Type: event.TypeCommit, Author: "alice", Title: "fix: off-by-one in progress bar"},
			wantLabel:      event.ClassificationNormalBugfix,
			wantConfidence: 0.70,
			wantOK:         true,
		},
		{
			name:           "conventional feat with scope",
			ev:             &ent.Event{Type: event.TypeCommit, Author: "alice", Title: "feat(parser): add streaming mode"},
			wantLabel:      event.ClassificationFeature,
			wantConfidence: 0.80,
			wantOK:         true,
		},
		{
			name:           "conventional refactor",
			ev:             &ent.Event{Type: event.TypeCommit, Author: "alice", Title: "refactor: split decoder"},
			wantLabel:      event.ClassificationRefactor,
			wantConfidence: 0.80,
			wantOK:         true,
		},
		{
			name:           "conventional chore is other",
			ev:             &ent.Event{Type: event.TypeCommit, Author: "alice", Title: "chore: bump version"},
			wantLabel:      event.ClassificationOther,
			wantConfidence: 0.85,
			wantOK:         true,
		},
		{
			name:   "security keyword forces LLM despite fix prefix",
			ev:     &ent.Event{Type: event.TypeCommit, Author: "alice", Title: "fix: correct bounds check in parse_url", Message: "CVE-2024-9999"},
			wantOK: false,
		},
		{
			name:   "use-after-free in title forces LLM",
			ev:     &ent.Event{Type: event.TypeCommit, Author: "alice", Title: "avoid use-after-free in cleanup path"},
			wantOK: false,
		},
		{
			name:   "plain title is a miss",
			ev:     &ent.Event{Type: event.TypeCommit, Author: "alice", Title: "improve error message wording"},
			wantOK: false,
		},
		{
			name:   "unknown conventional prefix is a miss",
			ev:     &ent.Event{Type: event.TypeCommit, Author: "alice", Title: "wip: experiment"},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, confidence, ok := Prefilter(tt.ev)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLabel, label)
				assert.InDelta(t, tt.wantConfidence, confidence, 1e-9)
			}
		})
	}
}

// The pre-filter is a fast path for obviously-safe labels only; promoting an
// event to security_bugfix is exclusively the LLM's call.
func TestPrefilterNeverEmitsSecurityBugfix(t *testing.T) {
	titles := []string{
		"fix: heap buffer overflow in png decoder",
		"fix CVE-2023-1234",
		"security: patch auth bypass",
		"fix: correct bounds check",
		"feat: add TLS support",
		"v2.0.0",
		"random words",
		"exploit mitigation hardening",
	}
	authors := []string{"alice", "dependabot[bot]", "github-actions[bot]", ""}
	types := []event.Type{event.TypeCommit, event.TypePrMerge, event.TypeTag, event.TypeBugIssue}

	for _, typ := range types {
		for _, title := range titles {
			for _, author := range authors {
				ev := &ent.Event{Type: typ, Title: title, Author: author, Message: title}
				label, _, ok := Prefilter(ev)
				if ok {
					assert.NotEqual(t, event.ClassificationSecurityBugfix, label,
						fmt.Sprintf("type=%s title=%q author=%q", typ, title, author))
				}
			}
		}
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		wantLabel      event.Classification
		wantConfidence float64
		wantErr        bool
	}{
		{
			name:           "plain object",
			content:        `{"label":"security_bugfix","confidence":0.92,"reasoning":"bounds check"}`,
			wantLabel:      event.ClassificationSecurityBugfix,
			wantConfidence: 0.92,
		},
		{
			name:           "object wrapped in prose",
			content:        "Based on the diff:\n```json\n{\"label\": \"refactor\", \"confidence\": 0.8}\n```",
			wantLabel:      event.ClassificationRefactor,
			wantConfidence: 0.8,
		},
		{
			name:           "alias normalized",
			content:        `{"label":"bugfix","confidence":0.7}`,
			wantLabel:      event.ClassificationNormalBugfix,
			wantConfidence: 0.7,
		},
		{
			name:           "unknown label becomes other",
			content:        `{"label":"mystery","confidence":0.5}`,
			wantLabel:      event.ClassificationOther,
			wantConfidence: 0.5,
		},
		{
			name:           "confidence clamped",
			content:        `{"label":"feature","confidence":1.7}`,
			wantLabel:      event.ClassificationFeature,
			wantConfidence: 1.0,
		},
		{name: "no json", content: "I could not decide.", wantErr: true},
		{name: "unbalanced", content: `{"label":"other"`, wantErr: true},
		{name: "missing label", content: `{"confidence":0.9}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, confidence, err := ParseLabel(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, label)
			assert.InDelta(t, tt.wantConfidence, confidence, 1e-9)
		})
	}
}
