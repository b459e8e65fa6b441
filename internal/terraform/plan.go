package terraform

import (
	"fmt"

	tfjson "github.com/hashicorp/terraform-json"
)

// Summary counts the resource changes in a plan.
type Summary struct {
	Add     int
	Change  int
	Destroy int
	Replace int
	NoOp    int
}

// Summarize tallies a parsed plan's resource changes.
func Summarize(plan *tfjson.Plan) Summary {
	var s Summary
	if plan == nil {
		return s
	}
	for _, rc := range plan.ResourceChanges {
		if rc.Change == nil {
			continue
		}
		actions := rc.Change.Actions
		switch {
		case actions.Replace():
			s.Replace++
		case actions.Create():
			s.Add++
		case actions.Update():
			s.Change++
		case actions.Delete():
			s.Destroy++
		default:
			s.NoOp++
		}
	}
	return s
}

// HasChanges reports whether the plan would modify any resource.
func (s Summary) HasChanges() bool {
	return s.Add > 0 || s.Change > 0 || s.Destroy > 0 || s.Replace > 0
}

// Total returns the number of resources the plan would touch.
func (s Summary) Total() int {
	return s.Add + s.Change + s.Destroy + s.Replace
}

// ChangedResources lists the addresses a plan would touch, one line per
// resource, annotated with the planned action.
func ChangedResources(plan *tfjson.Plan) []string {
	if plan == nil {
		return nil
	}
	lines := make([]string, 0, len(plan.ResourceChanges))
	for _, rc := range plan.ResourceChanges {
		if rc.Change == nil || rc.Change.Actions.NoOp() || rc.Change.Actions.Read() {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s (%s)", rc.Address, actionLabel(rc.Change.Actions)))
	}
	return lines
}

func actionLabel(actions tfjson.Actions) string {
	switch {
	case actions.Replace():
		return "replace"
	case actions.Create():
		return "create"
	case actions.Update():
		return "update"
	case actions.Delete():
		return "destroy"
	default:
		return "no-op"
	}
}
