package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vulnsentinel/vulnsentinel/ent/clientvuln"
)

func ptr(s clientvuln.Status) *clientvuln.Status { return &s }

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		current *clientvuln.Status
		next    clientvuln.Status
		want    bool
	}{
		{"null to recorded", nil, clientvuln.StatusRecorded, true},
		{"null to not_affect", nil, clientvuln.StatusNotAffect, true},
		{"null to reported", nil, clientvuln.StatusReported, false},
		{"null to fixed", nil, clientvuln.StatusFixed, false},
		{"recorded to reported", ptr(clientvuln.StatusRecorded), clientvuln.StatusReported, true},
		{"recorded to confirmed skip", ptr(clientvuln.StatusRecorded), clientvuln.StatusConfirmed, false},
		{"recorded to fixed skip", ptr(clientvuln.StatusRecorded), clientvuln.StatusFixed, false},
		{"reported to confirmed", ptr(clientvuln.StatusReported), clientvuln.StatusConfirmed, true},
		{"reported to fixed skip", ptr(clientvuln.StatusReported), clientvuln.StatusFixed, false},
		{"confirmed to fixed", ptr(clientvuln.StatusConfirmed), clientvuln.StatusFixed, true},
		{"confirmed backwards", ptr(clientvuln.StatusConfirmed), clientvuln.StatusRecorded, false},
		{"fixed is terminal", ptr(clientvuln.StatusFixed), clientvuln.StatusReported, false},
		{"not_affect is terminal", ptr(clientvuln.StatusNotAffect), clientvuln.StatusRecorded, false},
		{"self transition rejected", ptr(clientvuln.StatusReported), clientvuln.StatusReported, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.current, tt.next))
		})
	}
}
