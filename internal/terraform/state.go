package terraform

import (
	"strings"

	tfjson "github.com/hashicorp/terraform-json"
)

// StateAddresses returns the addresses of every resource tracked in state,
// walking the root module and all child modules.
func StateAddresses(state *tfjson.State) []string {
	if state == nil || state.Values == nil || state.Values.RootModule == nil {
		return nil
	}
	var addrs []string
	collectAddresses(state.Values.RootModule, &addrs)
	return addrs
}

func collectAddresses(mod *tfjson.StateModule, addrs *[]string) {
	for _, res := range mod.Resources {
		*addrs = append(*addrs, res.Address)
	}
	for _, child := range mod.ChildModules {
		collectAddresses(child, addrs)
	}
}

// MatchingAddresses filters addresses to those covered by the given targets.
// A target matches itself and everything nested under it, the same way
// terraform resolves -target arguments.
func MatchingAddresses(addrs, targets []string) []string {
	if len(targets) == 0 {
		return nil
	}
	var matched []string
	for _, addr := range addrs {
		for _, target := range targets {
			if addr == target || strings.HasPrefix(addr, target+".") || strings.HasPrefix(addr, target+"[") {
				matched = append(matched, addr)
				break
			}
		}
	}
	return matched
}
