package terraform

import (
	"testing"

	tfjson "github.com/hashicorp/terraform-json"
	"github.com/stretchr/testify/assert"
)

func testState() *tfjson.State {
	return &tfjson.State{
		Values: &tfjson.StateValues{
			RootModule: &tfjson.StateModule{
				Resources: []*tfjson.StateResource{
					{Address: "google_project_service.compute"},
				},
				ChildModules: []*tfjson.StateModule{
					{
						Address: "module.networking",
						Resources: []*tfjson.StateResource{
							{Address: "module.networking.google_compute_network.vpc"},
							{Address: "module.networking.google_compute_subnetwork.web[0]"},
						},
					},
					{
						Address: "module.security",
						Resources: []*tfjson.StateResource{
							{Address: "module.security.google_kms_key_ring.main"},
						},
						ChildModules: []*tfjson.StateModule{
							{
								Address: "module.security.module.iam",
								Resources: []*tfjson.StateResource{
									{Address: "module.security.module.iam.google_service_account.app"},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestStateAddresses(t *testing.T) {
	addrs := StateAddresses(testState())

	assert.ElementsMatch(t, []string{
		"google_project_service.compute",
		"module.networking.google_compute_network.vpc",
		"module.networking.google_compute_subnetwork.web[0]",
		"module.security.google_kms_key_ring.main",
		"module.security.module.iam.google_service_account.app",
	}, addrs)
}

func TestStateAddresses_Empty(t *testing.T) {
	assert.Nil(t, StateAddresses(nil))
	assert.Nil(t, StateAddresses(&tfjson.State{}))
	assert.Nil(t, StateAddresses(&tfjson.State{Values: &tfjson.StateValues{}}))
}

func TestMatchingAddresses(t *testing.T) {
	addrs := StateAddresses(testState())

	tests := []struct {
		name    string
		targets []string
		want    []string
	}{
		{
			name:    "module target matches nested resources",
			targets: []string{"module.networking"},
			want: []string{
				"module.networking.google_compute_network.vpc",
				"module.networking.google_compute_subnetwork.web[0]",
			},
		},
		{
			name:    "exact resource target",
			targets: []string{"google_project_service.compute"},
			want:    []string{"google_project_service.compute"},
		},
		{
			name:    "indexed resource matched by base address",
			targets: []string{"module.networking.google_compute_subnetwork.web"},
			want:    []string{"module.networking.google_compute_subnetwork.web[0]"},
		},
		{
			name:    "nested child modules covered",
			targets: []string{"module.security"},
			want: []string{
				"module.security.google_kms_key_ring.main",
				"module.security.module.iam.google_service_account.app",
			},
		},
		{
			name:    "no targets matches nothing",
			targets: nil,
			want:    nil,
		},
		{
			name:    "prefix must align on a boundary",
			targets: []string{"module.network"},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchingAddresses(addrs, tt.targets))
		})
	}
}
