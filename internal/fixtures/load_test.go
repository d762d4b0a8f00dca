package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	modopt "github.com/fudiyangjin/StarResonanceAutoMod"
)

func TestParseModules_DecodesAllFields(t *testing.T) {
	doc := `{"modules": [
		{"name": "测试模组", "configId": 5500101, "uuid": 42, "quality": 3,
		 "parts": [{"id": 1, "name": "力量加持", "value": 6}, {"id": 101, "name": "极-伤害叠加", "value": 2}]}
	]}`
	modules, err := ParseModules(doc)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	m := modules[0]
	assert.Equal(t, "测试模组", m.Name)
	assert.Equal(t, 5500101, m.ConfigID)
	assert.Equal(t, 42, m.UUID)
	assert.Equal(t, 3, m.Quality)
	require.Len(t, m.Parts, 2)
	assert.Equal(t, modopt.ModulePart{ID: 1, Name: "力量加持", Value: 6}, m.Parts[0])
}

func TestParseModules_MissingArrayIsError(t *testing.T) {
	_, err := ParseModules(`{"foo": []}`)
	assert.Error(t, err)
}

func TestParseModules_EmptyPoolIsEmptySlice(t *testing.T) {
	modules, err := ParseModules(`{"modules": []}`)
	require.NoError(t, err)
	assert.Empty(t, modules)
}

// TestLoadModules_ExercisesBothStrategies runs the shared testdata pool
// through both engine strategies end to end, the fixture-loader
// equivalent of the teacher's integration_test.go real-contest check.
func TestLoadModules_ExercisesBothStrategies(t *testing.T) {
	modules, err := LoadModules("../../testdata/modules.json")
	require.NoError(t, err)
	require.Len(t, modules, 10)

	ctx := context.Background()
	c := modopt.Constraints{Target: map[int]struct{}{1: {}}}

	enumerated, err := modopt.Enumerate(ctx, modules, c, modopt.EnumerateOptions{K: 20, Workers: 4})
	require.NoError(t, err)
	require.NotEmpty(t, enumerated)
	for _, sol := range enumerated {
		require.Len(t, sol.Modules, 4)
		assert.Greater(t, sol.Score, 0)
	}

	heuristic, err := modopt.Optimize(ctx, modules, c, modopt.HeuristicOptions{K: 10, AttemptMultiplier: 20, LocalSearchIterations: 10, Workers: 4})
	require.NoError(t, err)
	require.NotEmpty(t, heuristic)

	assert.GreaterOrEqual(t, enumerated[0].Score, heuristic[0].Score,
		"exhaustive enumeration must never trail the heuristic's best")
}
