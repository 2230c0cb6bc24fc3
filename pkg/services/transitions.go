package services

import (
	"github.com/vulnsentinel/vulnsentinel/ent/clientvuln"
)

// customerTransitions is the allowed customer-facing status DAG. The empty
// key stands for the null (pre-finalize) status. Terminal states map to an
// empty slice; absent states are invalid sources.
var customerTransitions = map[string][]clientvuln.Status{
	"": {clientvuln.StatusRecorded, clientvuln.StatusNotAffect},
	string(clientvuln.StatusRecorded):  {clientvuln.StatusReported},
	string(clientvuln.StatusReported):  {clientvuln.StatusConfirmed},
	string(clientvuln.StatusConfirmed): {clientvuln.StatusFixed},
	string(clientvuln.StatusFixed):     {},
	string(clientvuln.StatusNotAffect): {},
}

// CanTransition reports whether the customer-facing status may move from
// current (nil = not yet set) to next.
func CanTransition(current *clientvuln.Status, next clientvuln.Status) bool {
	key := ""
	if current != nil {
		key = string(*current)
	}
	allowed, ok := customerTransitions[key]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == next {
			return true
		}
	}
	return false
}
