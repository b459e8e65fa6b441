package terraform

import (
	"testing"

	tfjson "github.com/hashicorp/terraform-json"
	"github.com/stretchr/testify/assert"
)

func change(addr string, actions ...tfjson.Action) *tfjson.ResourceChange {
	return &tfjson.ResourceChange{
		Address: addr,
		Change:  &tfjson.Change{Actions: actions},
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		plan *tfjson.Plan
		want Summary
	}{
		{
			name: "nil plan",
			plan: nil,
			want: Summary{},
		},
		{
			name: "empty plan",
			plan: &tfjson.Plan{},
			want: Summary{},
		},
		{
			name: "mixed actions",
			plan: &tfjson.Plan{
				ResourceChanges: []*tfjson.ResourceChange{
					change("module.networking.google_compute_network.vpc", tfjson.ActionCreate),
					change("module.networking.google_compute_subnetwork.web", tfjson.ActionCreate),
					change("module.security.google_kms_key_ring.main", tfjson.ActionUpdate),
					change("module.databases.google_sql_database_instance.main", tfjson.ActionDelete),
					change("module.compute.google_compute_instance.bastion",
						tfjson.ActionDelete, tfjson.ActionCreate),
					change("module.foundation.google_project_service.compute", tfjson.ActionNoop),
				},
			},
			want: Summary{Add: 2, Change: 1, Destroy: 1, Replace: 1, NoOp: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.plan))
		})
	}
}

func TestSummary_HasChanges(t *testing.T) {
	assert.False(t, Summary{}.HasChanges())
	assert.False(t, Summary{NoOp: 12}.HasChanges())
	assert.True(t, Summary{Add: 1}.HasChanges())
	assert.True(t, Summary{Destroy: 3}.HasChanges())
	assert.True(t, Summary{Replace: 1}.HasChanges())
}

func TestSummary_Total(t *testing.T) {
	s := Summary{Add: 2, Change: 1, Destroy: 3, Replace: 1, NoOp: 10}
	assert.Equal(t, 7, s.Total())
}

func TestChangedResources(t *testing.T) {
	plan := &tfjson.Plan{
		ResourceChanges: []*tfjson.ResourceChange{
			change("module.networking.google_compute_network.vpc", tfjson.ActionCreate),
			change("module.security.google_kms_key_ring.main", tfjson.ActionUpdate),
			change("module.databases.google_sql_database_instance.main", tfjson.ActionDelete),
			change("module.compute.google_compute_instance.bastion",
				tfjson.ActionDelete, tfjson.ActionCreate),
			change("module.foundation.google_project_service.compute", tfjson.ActionNoop),
			change("data.google_project.current", tfjson.ActionRead),
		},
	}

	lines := ChangedResources(plan)

	assert.Equal(t, []string{
		"module.networking.google_compute_network.vpc (create)",
		"module.security.google_kms_key_ring.main (update)",
		"module.databases.google_sql_database_instance.main (destroy)",
		"module.compute.google_compute_instance.bastion (replace)",
	}, lines)
}

func TestChangedResources_NilPlan(t *testing.T) {
	assert.Nil(t, ChangedResources(nil))
}
