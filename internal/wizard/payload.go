package wizard

// Fixed feature limits applied to every server created by the wizard.
const (
	featureDatabases   = 5
	featureBackups     = 3
	featureAllocations = 1
)

// buildCreatePayload shapes a fully-collected session into the
// creation payload the Application API expects. Optional text fields
// are omitted entirely when empty.
func buildCreatePayload(s *Session) map[string]any {
	payload := map[string]any{
		"name":         s.Name,
		"user":         s.UserID,
		"egg":          s.EggID,
		"docker_image": s.Image,
		"startup":      s.Startup,
		"environment":  s.Env,
		"limits": map[string]any{
			"memory": s.Memory,
			"swap":   s.Swap,
			"disk":   s.Disk,
			"io":     s.IO,
			"cpu":    s.CPU,
		},
		"feature_limits": map[string]any{
			"databases":   featureDatabases,
			"backups":     featureBackups,
			"allocations": featureAllocations,
		},
		"allocation": map[string]any{
			"default": s.AllocationID,
		},
		"start_on_completion": false,
		"skip_scripts":        false,
	}
	if s.Description != "" {
		payload["description"] = s.Description
	}
	if s.ExternalID != "" {
		payload["external_id"] = s.ExternalID
	}
	return payload
}
