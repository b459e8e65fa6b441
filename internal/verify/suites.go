package verify

import (
	"github.com/catherinevee/terraform-gcp-sub000/internal/phase"
)

// Suite is the named set of checks covering one phase.
type Suite struct {
	Name   string
	Checks []Check
}

// For returns the suite for a phase. Phases are validated before any
// suite runs, so the default arm is unreachable in practice.
func For(p phase.Phase) Suite {
	switch p {
	case phase.Foundation:
		return foundationSuite()
	case phase.Networking:
		return networkingSuite()
	case phase.Security:
		return securitySuite()
	case phase.Data:
		return dataSuite()
	case phase.Compute:
		return computeSuite()
	case phase.Observability:
		return observabilitySuite()
	case phase.Operations:
		return operationsSuite()
	default:
		return Suite{Name: p.Name()}
	}
}
