package wizard

import "fmt"

// ValidationError reports malformed user input at a stage. The stage is
// not advanced; the same prompt is issued again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// EmptyResultError reports that a prerequisite lookup returned zero
// items. The call itself succeeded, so this is distinct from an API
// error, but the workflow cannot continue; Guidance tells the operator
// what to fix first.
type EmptyResultError struct {
	Resource string
	Guidance string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no %s found: %s", e.Resource, e.Guidance)
}
