package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_ParsesFixture(t *testing.T) {
	cfg, err := loadScenario("../../testdata/scenario.yaml")
	require.NoError(t, err)
	assert.Equal(t, "strength-focus", cfg.Name)
	assert.Equal(t, "both", cfg.Strategy)
	assert.Equal(t, []int{1}, cfg.Target)
	require.NotNil(t, cfg.Enumerate)
	assert.Equal(t, 10, cfg.Enumerate.K)
	require.NotNil(t, cfg.Heuristic)
	assert.Equal(t, 20, cfg.Heuristic.AttemptMultiplier)
}

func TestLoadScenario_DefaultsStrategyToBoth(t *testing.T) {
	cfg, err := loadScenario("../../testdata/scenario_no_strategy.yaml")
	require.NoError(t, err)
	assert.Equal(t, "both", cfg.Strategy)
}

func TestToIDSet_EmptyIsNil(t *testing.T) {
	assert.Nil(t, toIDSet(nil))
	assert.Nil(t, toIDSet([]int{}))
}

func TestToIDSet_BuildsMembershipSet(t *testing.T) {
	set := toIDSet([]int{1, 2, 2})
	assert.Len(t, set, 2)
	_, ok := set[1]
	assert.True(t, ok)
}
