package modopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourCopies builds four identical modules, each carrying one part —
// the fixture spec.md §8 scenarios 3-6 are worked out against.
func fourCopies(id int, name string, value int) []ModuleInfo {
	m := ModuleInfo{Parts: []ModulePart{{ID: id, Name: name, Value: value}}}
	return []ModuleInfo{m, m, m, m}
}

func TestScoreByIndices_ThresholdBoundary(t *testing.T) {
	// spec.md §8 scenario 3: sum=4 -> level 2, basic base 14,
	// total_sum=4 -> TOTAL_ATTR_POWER[4]=23. score = 14+23 = 37.
	modules := fourCopies(AttrStrengthBoost, "力量加持", 1)
	score, err := scoreByIndices([]int{0, 1, 2, 3}, modules, Constraints{})
	require.NoError(t, err)
	assert.Equal(t, 37, score)
}

func TestScoreByIndices_TargetDoubling(t *testing.T) {
	// spec.md §8 scenario 4: score = 28+23 = 51.
	modules := fourCopies(AttrStrengthBoost, "力量加持", 1)
	c := Constraints{Target: map[int]struct{}{AttrStrengthBoost: {}}}
	score, err := scoreByIndices([]int{0, 1, 2, 3}, modules, c)
	require.NoError(t, err)
	assert.Equal(t, 51, score)
}

func TestScoreByIndices_ExcludeZeroing(t *testing.T) {
	// spec.md §8 scenario 5: score = 0+23 = 23.
	modules := fourCopies(AttrStrengthBoost, "力量加持", 1)
	c := Constraints{Exclude: map[int]struct{}{AttrStrengthBoost: {}}}
	score, err := scoreByIndices([]int{0, 1, 2, 3}, modules, c)
	require.NoError(t, err)
	assert.Equal(t, 23, score)
}

func TestScoreByIndices_TargetPrecedesExclude(t *testing.T) {
	modules := fourCopies(AttrStrengthBoost, "力量加持", 1)
	c := Constraints{
		Target:  map[int]struct{}{AttrStrengthBoost: {}},
		Exclude: map[int]struct{}{AttrStrengthBoost: {}},
	}
	score, err := scoreByIndices([]int{0, 1, 2, 3}, modules, c)
	require.NoError(t, err)
	assert.Equal(t, 51, score, "target must win when an id is in both sets")
}

func TestMinAttrSumSatisfied_FiltersBelowThreshold(t *testing.T) {
	// spec.md §8 scenario 6: min_attr_sums={1:5} against a sum of 4.
	modules := fourCopies(AttrStrengthBoost, "力量加持", 1)
	ok := minAttrSumSatisfied([]int{0, 1, 2, 3}, modules, map[int]int{AttrStrengthBoost: 5})
	assert.False(t, ok)

	ok = minAttrSumSatisfied([]int{0, 1, 2, 3}, modules, map[int]int{AttrStrengthBoost: 4})
	assert.True(t, ok)
}

// samplePool mirrors testdata/modules.json without the JSON hop, so
// package-internal tests don't need to import the fixtures package
// (which itself imports modopt, and package modopt's test files share
// its package name).
func samplePool() []ModuleInfo {
	return []ModuleInfo{
		{Name: "初级攻击模组-甲", ConfigID: ConfigBasicAttack, UUID: 1001, Quality: 3, Parts: []ModulePart{
			{ID: AttrStrengthBoost, Name: "力量加持", Value: 6}, {ID: AttrSpecialAtkDamage, Name: "特攻伤害", Value: 3}, {ID: AttrDamageStacking, Name: "极-伤害叠加", Value: 2},
		}},
		{Name: "初级攻击模组-乙", ConfigID: ConfigBasicAttack, UUID: 1002, Quality: 3, Parts: []ModulePart{
			{ID: AttrStrengthBoost, Name: "力量加持", Value: 5}, {ID: AttrCriticalFocus, Name: "暴击专注", Value: 4}, {ID: AttrDamageStacking, Name: "极-伤害叠加", Value: 3},
		}},
		{Name: "高性能攻击模组-甲", ConfigID: ConfigHighPerformanceAttack, UUID: 1003, Quality: 4, Parts: []ModulePart{
			{ID: AttrStrengthBoost, Name: "力量加持", Value: 8}, {ID: AttrSpecialAtkDamage, Name: "特攻伤害", Value: 6}, {ID: AttrAttackSpeedFocus, Name: "攻速专注", Value: 3},
		}},
		{Name: "高性能攻击模组-乙", ConfigID: ConfigHighPerformanceAttack, UUID: 1004, Quality: 4, Parts: []ModulePart{
			{ID: AttrAgilityBoost, Name: "敏捷加持", Value: 5}, {ID: AttrCriticalFocus, Name: "暴击专注", Value: 5}, {ID: AttrTeamLuckCrit, Name: "极-全队幸暴", Value: 4},
		}},
		{Name: "基础防护模组-甲", ConfigID: ConfigBasicProtection, UUID: 1005, Quality: 3, Parts: []ModulePart{
			{ID: AttrMagicResistance, Name: "抵御魔法", Value: 7}, {ID: AttrPhysicalResist, Name: "抵御物理", Value: 6}, {ID: AttrLastStandGuard, Name: "极-绝境守护", Value: 3},
		}},
		{Name: "高性能守护模组-甲", ConfigID: ConfigHighPerformanceProtection, UUID: 1006, Quality: 4, Parts: []ModulePart{
			{ID: AttrMagicResistance, Name: "抵御魔法", Value: 9}, {ID: AttrLifeCohesion, Name: "极-生命凝聚", Value: 5}, {ID: AttrPhysicalResist, Name: "抵御物理", Value: 4},
		}},
		{Name: "基础治疗模组-甲", ConfigID: ConfigBasicHealing, UUID: 1007, Quality: 3, Parts: []ModulePart{
			{ID: AttrSpecialHealBoost, Name: "特攻治疗加持", Value: 5}, {ID: AttrExpertHealBoost, Name: "专精治疗加持", Value: 4}, {ID: AttrFirstAid, Name: "极-急救措施", Value: 3},
		}},
		{Name: "高性能治疗模组-甲", ConfigID: ConfigHighPerformanceHealing, UUID: 1008, Quality: 4, Parts: []ModulePart{
			{ID: AttrSpecialHealBoost, Name: "特攻治疗加持", Value: 7}, {ID: AttrLifeFluctuation, Name: "极-生命波动", Value: 6}, {ID: AttrIntelligenceBoost, Name: "智力加持", Value: 4},
		}},
		{Name: "初级攻击模组-丙", ConfigID: ConfigBasicAttack, UUID: 1009, Quality: 2, Parts: []ModulePart{
			{ID: AttrStrengthBoost, Name: "力量加持", Value: 4}, {ID: AttrLuckFocus, Name: "幸运专注", Value: 3}, {ID: AttrCastingFocus, Name: "施法专注", Value: 2},
		}},
		{Name: "高性能攻击模组-丙", ConfigID: ConfigHighPerformanceAttack, UUID: 1010, Quality: 4, Parts: []ModulePart{
			{ID: AttrStrengthBoost, Name: "力量加持", Value: 9}, {ID: AttrSpecialAtkDamage, Name: "特攻伤害", Value: 8}, {ID: AttrLifeDrain, Name: "极-生命汲取", Value: 5},
		}},
	}
}

func TestScoreByIndices_Purity(t *testing.T) {
	modules := samplePool()
	c := Constraints{Target: map[int]struct{}{AttrStrengthBoost: {}}, Exclude: map[int]struct{}{AttrCriticalFocus: {}}}
	indices := []int{0, 2, 5, 8}
	s1, err1 := scoreByIndices(indices, modules, c)
	s2, err2 := scoreByIndices(indices, modules, c)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, s1, s2)
}

func TestScoreByIndices_SpecialAttrUsesSpecialTable(t *testing.T) {
	modules := fourCopies(AttrDamageStacking, "极-伤害叠加", 1)
	score, err := scoreByIndices([]int{0, 1, 2, 3}, modules, Constraints{})
	require.NoError(t, err)
	// level 2 special base = 29, total_sum=4 -> +23
	assert.Equal(t, 52, score)
}

func TestScoreByName_MatchesByIndicesWithNoPreferences(t *testing.T) {
	modules := fourCopies(AttrStrengthBoost, "力量加持", 1)
	byID, err := scoreByIndices([]int{0, 1, 2, 3}, modules, Constraints{})
	require.NoError(t, err)
	byName, breakdown, err := scoreByName([]int{0, 1, 2, 3}, modules)
	require.NoError(t, err)
	assert.Equal(t, byID, byName)
	require.Len(t, breakdown, 1)
	assert.Equal(t, AttrAmount{Name: "力量加持", Value: 4}, breakdown[0])
}

func TestTotalAttrPower_OutOfRangeIsDomainError(t *testing.T) {
	_, err := TotalAttrPower(121)
	require.Error(t, err)
	var domainErr *DomainRangeError
	assert.ErrorAs(t, err, &domainErr)
}

func TestTotalAttrPower_UndefinedGapIsZero(t *testing.T) {
	// module_optimizer.h's table has no entry for 9-17; this module
	// treats gaps as zero rather than interpolating (DESIGN.md).
	v, err := TotalAttrPower(12)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}
