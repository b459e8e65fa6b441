package phase

import (
	"testing"

	apperrors "github.com/catherinevee/terraform-gcp-sub000/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    Phase
		wantErr bool
	}{
		{name: "foundation", arg: "0", want: Foundation},
		{name: "networking", arg: "1", want: Networking},
		{name: "operations", arg: "6", want: Operations},
		{name: "above range", arg: "7", wantErr: true},
		{name: "negative", arg: "-1", wantErr: true},
		{name: "not a number", arg: "networking", wantErr: true},
		{name: "empty", arg: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperrors.ErrCodeInvalidInput, apperrors.GetErrorCode(err))
				assert.Contains(t, err.Error(), "Must be 0-6")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, Count)
	for i, p := range all {
		assert.Equal(t, Phase(i), p, "phases must be in ascending order")
		assert.NoError(t, p.Valid())
	}
}

func TestSpec_Complete(t *testing.T) {
	for _, p := range All() {
		spec := p.Spec()
		assert.NotEmpty(t, spec.Name, "phase %d has no name", int(p))
		assert.NotEmpty(t, spec.Description, "phase %d has no description", int(p))
		assert.NotEmpty(t, spec.Targets, "phase %d has no targets", int(p))
		assert.NotEmpty(t, spec.Resources, "phase %d has no resource list", int(p))
	}
}

// Phase target sets are mutually exclusive: no terraform address may be
// claimed by two phases, or a rollback of one would destroy another's
// resources.
func TestSpec_TargetsDisjoint(t *testing.T) {
	seen := make(map[string]Phase)
	for _, p := range All() {
		for _, target := range p.Spec().Targets {
			owner, dup := seen[target]
			require.False(t, dup, "target %s claimed by both %s and %s", target, owner, p)
			seen[target] = p
		}
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "phase 1 (networking)", Networking.String())
	assert.Equal(t, "phase 9 (unknown)", Phase(9).String())
}
