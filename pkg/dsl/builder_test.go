package dsl_test

import (
	"context"
	"testing"

	"github.com/aretw0/bramble"
	"github.com/aretw0/bramble/pkg/domain"
	"github.com/aretw0/bramble/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Catalog(t *testing.T) {
	b := dsl.New()
	b.Op("unlock-car").Requires("have-keys").Adds("car-unlocked")
	b.Op("drive-to-work").Requires("at-home", "car-unlocked").Adds("at-work").Deletes("at-home")

	catalog, err := b.Catalog()
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	assert.Equal(t, "unlock-car", catalog[0].Action, "declaration order must be preserved")
	assert.Equal(t, domain.Facts{"at-home", "car-unlocked"}, catalog[1].Preconds)
	assert.Equal(t, domain.Facts{"at-home"}, catalog[1].Deletes)
}

func TestBuilder_RejectsUnnamedOperator(t *testing.T) {
	b := dsl.New()
	b.Op("")

	_, err := b.Catalog()
	assert.ErrorContains(t, err, "missing action")
}

func TestBuilder_EndToEnd(t *testing.T) {
	loader, err := dsl.New().
		Op("unlock-car").Requires("have-keys").Adds("car-unlocked").
		Op("drive-to-work").Requires("at-home", "car-unlocked").Adds("at-work").Deletes("at-home").
		Initially("at-home", "have-keys").
		Goals("at-work").
		Build()
	require.NoError(t, err)

	eng, err := bramble.New(loader)
	require.NoError(t, err)

	result, err := eng.SolveProblem(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeSolved, result.Outcome)
	assert.Equal(t, []string{"unlock-car", "drive-to-work"}, result.Trace)
	assert.False(t, result.Final.Contains("at-home"))
}
