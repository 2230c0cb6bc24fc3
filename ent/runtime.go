// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/vulnsentinel/vulnsentinel/ent/agentrun"
	"github.com/vulnsentinel/vulnsentinel/ent/agenttoolcall"
	"github.com/vulnsentinel/vulnsentinel/ent/clientvuln"
	"github.com/vulnsentinel/vulnsentinel/ent/event"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/ent/project"
	"github.com/vulnsentinel/vulnsentinel/ent/projectdependency"
	"github.com/vulnsentinel/vulnsentinel/ent/schema"
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentrunFields := schema.AgentRun{}.Fields()
	_ = agentrunFields
	// agentrunDescTurns is the schema descriptor for turns field.
	agentrunDescTurns := agentrunFields[4].Descriptor()
	// agentrun.DefaultTurns holds the default value on creation for the turns field.
	agentrun.DefaultTurns = agentrunDescTurns.Default.(int)
	// agentrunDescInputTokens is the schema descriptor for input_tokens field.
	agentrunDescInputTokens := agentrunFields[5].Descriptor()
	// agentrun.DefaultInputTokens holds the default value on creation for the input_tokens field.
	agentrun.DefaultInputTokens = agentrunDescInputTokens.Default.(int)
	// agentrunDescOutputTokens is the schema descriptor for output_tokens field.
	agentrunDescOutputTokens := agentrunFields[6].Descriptor()
	// agentrun.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	agentrun.DefaultOutputTokens = agentrunDescOutputTokens.Default.(int)
	// agentrunDescEstimatedCostUsd is the schema descriptor for estimated_cost_usd field.
	agentrunDescEstimatedCostUsd := agentrunFields[7].Descriptor()
	// agentrun.DefaultEstimatedCostUsd holds the default value on creation for the estimated_cost_usd field.
	agentrun.DefaultEstimatedCostUsd = agentrunDescEstimatedCostUsd.Default.(float64)
	// agentrunDescDurationMs is the schema descriptor for duration_ms field.
	agentrunDescDurationMs := agentrunFields[8].Descriptor()
	// agentrun.DefaultDurationMs holds the default value on creation for the duration_ms field.
	agentrun.DefaultDurationMs = agentrunDescDurationMs.Default.(int64)
	// agentrunDescCreatedAt is the schema descriptor for created_at field.
	agentrunDescCreatedAt := agentrunFields[11].Descriptor()
	// agentrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentrun.DefaultCreatedAt = agentrunDescCreatedAt.Default.(func() time.Time)
	// agentrunDescUpdatedAt is the schema descriptor for updated_at field.
	agentrunDescUpdatedAt := agentrunFields[12].Descriptor()
	// agentrun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentrun.DefaultUpdatedAt = agentrunDescUpdatedAt.Default.(func() time.Time)
	// agentrun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentrun.UpdateDefaultUpdatedAt = agentrunDescUpdatedAt.UpdateDefault.(func() time.Time)
	// agentrunDescID is the schema descriptor for id field.
	agentrunDescID := agentrunFields[0].Descriptor()
	// agentrun.DefaultID holds the default value on creation for the id field.
	agentrun.DefaultID = agentrunDescID.Default.(func() string)
	agenttoolcallFields := schema.AgentToolCall{}.Fields()
	_ = agenttoolcallFields
	// agenttoolcallDescOutputBytes is the schema descriptor for output_bytes field.
	agenttoolcallDescOutputBytes := agenttoolcallFields[5].Descriptor()
	// agenttoolcall.DefaultOutputBytes holds the default value on creation for the output_bytes field.
	agenttoolcall.DefaultOutputBytes = agenttoolcallDescOutputBytes.Default.(int)
	// agenttoolcallDescDurationMs is the schema descriptor for duration_ms field.
	agenttoolcallDescDurationMs := agenttoolcallFields[6].Descriptor()
	// agenttoolcall.DefaultDurationMs holds the default value on creation for the duration_ms field.
	agenttoolcall.DefaultDurationMs = agenttoolcallDescDurationMs.Default.(int64)
	// agenttoolcallDescIsError is the schema descriptor for is_error field.
	agenttoolcallDescIsError := agenttoolcallFields[7].Descriptor()
	// agenttoolcall.DefaultIsError holds the default value on creation for the is_error field.
	agenttoolcall.DefaultIsError = agenttoolcallDescIsError.Default.(bool)
	// agenttoolcallDescCreatedAt is the schema descriptor for created_at field.
	agenttoolcallDescCreatedAt := agenttoolcallFields[8].Descriptor()
	// agenttoolcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	agenttoolcall.DefaultCreatedAt = agenttoolcallDescCreatedAt.Default.(func() time.Time)
	// agenttoolcallDescID is the schema descriptor for id field.
	agenttoolcallDescID := agenttoolcallFields[0].Descriptor()
	// agenttoolcall.DefaultID holds the default value on creation for the id field.
	agenttoolcall.DefaultID = agenttoolcallDescID.Default.(func() string)
	clientvulnFields := schema.ClientVuln{}.Fields()
	_ = clientvulnFields
	// clientvulnDescCreatedAt is the schema descriptor for created_at field.
	clientvulnDescCreatedAt := clientvulnFields[21].Descriptor()
	// clientvuln.DefaultCreatedAt holds the default value on creation for the created_at field.
	clientvuln.DefaultCreatedAt = clientvulnDescCreatedAt.Default.(func() time.Time)
	// clientvulnDescUpdatedAt is the schema descriptor for updated_at field.
	clientvulnDescUpdatedAt := clientvulnFields[22].Descriptor()
	// clientvuln.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clientvuln.DefaultUpdatedAt = clientvulnDescUpdatedAt.Default.(func() time.Time)
	// clientvuln.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clientvuln.UpdateDefaultUpdatedAt = clientvulnDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clientvulnDescID is the schema descriptor for id field.
	clientvulnDescID := clientvulnFields[0].Descriptor()
	// clientvuln.DefaultID holds the default value on creation for the id field.
	clientvuln.DefaultID = clientvulnDescID.Default.(func() string)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescIsBugfix is the schema descriptor for is_bugfix field.
	eventDescIsBugfix := eventFields[12].Descriptor()
	// event.DefaultIsBugfix holds the default value on creation for the is_bugfix field.
	event.DefaultIsBugfix = eventDescIsBugfix.Default.(bool)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[14].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	// eventDescUpdatedAt is the schema descriptor for updated_at field.
	eventDescUpdatedAt := eventFields[15].Descriptor()
	// event.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	event.DefaultUpdatedAt = eventDescUpdatedAt.Default.(func() time.Time)
	// event.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	event.UpdateDefaultUpdatedAt = eventDescUpdatedAt.UpdateDefault.(func() time.Time)
	// eventDescID is the schema descriptor for id field.
	eventDescID := eventFields[0].Descriptor()
	// event.DefaultID holds the default value on creation for the id field.
	event.DefaultID = eventDescID.Default.(func() string)
	libraryFields := schema.Library{}.Fields()
	_ = libraryFields
	// libraryDescPlatform is the schema descriptor for platform field.
	libraryDescPlatform := libraryFields[3].Descriptor()
	// library.DefaultPlatform holds the default value on creation for the platform field.
	library.DefaultPlatform = libraryDescPlatform.Default.(string)
	// libraryDescDefaultBranch is the schema descriptor for default_branch field.
	libraryDescDefaultBranch := libraryFields[5].Descriptor()
	// library.DefaultDefaultBranch holds the default value on creation for the default_branch field.
	library.DefaultDefaultBranch = libraryDescDefaultBranch.Default.(string)
	// libraryDescCreatedAt is the schema descriptor for created_at field.
	libraryDescCreatedAt := libraryFields[12].Descriptor()
	// library.DefaultCreatedAt holds the default value on creation for the created_at field.
	library.DefaultCreatedAt = libraryDescCreatedAt.Default.(func() time.Time)
	// libraryDescUpdatedAt is the schema descriptor for updated_at field.
	libraryDescUpdatedAt := libraryFields[13].Descriptor()
	// library.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	library.DefaultUpdatedAt = libraryDescUpdatedAt.Default.(func() time.Time)
	// library.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	library.UpdateDefaultUpdatedAt = libraryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// libraryDescID is the schema descriptor for id field.
	libraryDescID := libraryFields[0].Descriptor()
	// library.DefaultID holds the default value on creation for the id field.
	library.DefaultID = libraryDescID.Default.(func() string)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescDefaultBranch is the schema descriptor for default_branch field.
	projectDescDefaultBranch := projectFields[4].Descriptor()
	// project.DefaultDefaultBranch holds the default value on creation for the default_branch field.
	project.DefaultDefaultBranch = projectDescDefaultBranch.Default.(string)
	// projectDescAutoSyncDeps is the schema descriptor for auto_sync_deps field.
	projectDescAutoSyncDeps := projectFields[7].Descriptor()
	// project.DefaultAutoSyncDeps holds the default value on creation for the auto_sync_deps field.
	project.DefaultAutoSyncDeps = projectDescAutoSyncDeps.Default.(bool)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[12].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[13].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectFields[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() string)
	projectdependencyFields := schema.ProjectDependency{}.Fields()
	_ = projectdependencyFields
	// projectdependencyDescConstraintSource is the schema descriptor for constraint_source field.
	projectdependencyDescConstraintSource := projectdependencyFields[5].Descriptor()
	// projectdependency.DefaultConstraintSource holds the default value on creation for the constraint_source field.
	projectdependency.DefaultConstraintSource = projectdependencyDescConstraintSource.Default.(string)
	// projectdependencyDescNotifyEnabled is the schema descriptor for notify_enabled field.
	projectdependencyDescNotifyEnabled := projectdependencyFields[6].Descriptor()
	// projectdependency.DefaultNotifyEnabled holds the default value on creation for the notify_enabled field.
	projectdependency.DefaultNotifyEnabled = projectdependencyDescNotifyEnabled.Default.(bool)
	// projectdependencyDescCreatedAt is the schema descriptor for created_at field.
	projectdependencyDescCreatedAt := projectdependencyFields[7].Descriptor()
	// projectdependency.DefaultCreatedAt holds the default value on creation for the created_at field.
	projectdependency.DefaultCreatedAt = projectdependencyDescCreatedAt.Default.(func() time.Time)
	// projectdependencyDescUpdatedAt is the schema descriptor for updated_at field.
	projectdependencyDescUpdatedAt := projectdependencyFields[8].Descriptor()
	// projectdependency.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	projectdependency.DefaultUpdatedAt = projectdependencyDescUpdatedAt.Default.(func() time.Time)
	// projectdependency.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	projectdependency.UpdateDefaultUpdatedAt = projectdependencyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectdependencyDescID is the schema descriptor for id field.
	projectdependencyDescID := projectdependencyFields[0].Descriptor()
	// projectdependency.DefaultID holds the default value on creation for the id field.
	projectdependency.DefaultID = projectdependencyDescID.Default.(func() string)
	upstreamvulnFields := schema.UpstreamVuln{}.Fields()
	_ = upstreamvulnFields
	// upstreamvulnDescCreatedAt is the schema descriptor for created_at field.
	upstreamvulnDescCreatedAt := upstreamvulnFields[14].Descriptor()
	// upstreamvuln.DefaultCreatedAt holds the default value on creation for the created_at field.
	upstreamvuln.DefaultCreatedAt = upstreamvulnDescCreatedAt.Default.(func() time.Time)
	// upstreamvulnDescUpdatedAt is the schema descriptor for updated_at field.
	upstreamvulnDescUpdatedAt := upstreamvulnFields[15].Descriptor()
	// upstreamvuln.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	upstreamvuln.DefaultUpdatedAt = upstreamvulnDescUpdatedAt.Default.(func() time.Time)
	// upstreamvuln.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	upstreamvuln.UpdateDefaultUpdatedAt = upstreamvulnDescUpdatedAt.UpdateDefault.(func() time.Time)
	// upstreamvulnDescID is the schema descriptor for id field.
	upstreamvulnDescID := upstreamvulnFields[0].Descriptor()
	// upstreamvuln.DefaultID holds the default value on creation for the id field.
	upstreamvuln.DefaultID = upstreamvulnDescID.Default.(func() string)
}
