package modopt

// Immutable lookup tables driving combat-power scoring. All are loaded
// once at package init and never mutated afterward; there is no
// process-wide state beyond what's declared here.

// attrThresholds maps a per-attribute sum to a level in {0..6}: level is
// the count of thresholds the sum meets or exceeds.
var attrThresholds = [6]int{1, 4, 8, 12, 16, 20}

// basicAttrPower and specialAttrPower are indexed by level-1 (level in
// {1..6}), giving the combat-power contribution of a "basic" or
// "special" attribute at that level.
var basicAttrPower = [6]int{7, 14, 29, 44, 167, 254}
var specialAttrPower = [6]int{14, 29, 59, 89, 298, 448}

// Attribute identity. original_source classifies attributes by Chinese
// display name only (basic vs. special); it never assigns numeric IDs to
// the "special" set because the Python/C++ layer scores by name. This
// module needs IDs for the hot scoring path (§4.2 of the spec), so IDs
// 1-13 are assigned to the basic attributes and 101-109 to the special
// ones, in the order the original lists them. See DESIGN.md.
const (
	AttrStrengthBoost     = 1  // 力量加持
	AttrAgilityBoost      = 2  // 敏捷加持
	AttrIntelligenceBoost = 3  // 智力加持
	AttrSpecialAtkDamage  = 4  // 特攻伤害
	AttrEliteStrike       = 5  // 精英打击
	AttrSpecialHealBoost  = 6  // 特攻治疗加持
	AttrExpertHealBoost   = 7  // 专精治疗加持
	AttrCastingFocus      = 8  // 施法专注
	AttrAttackSpeedFocus  = 9  // 攻速专注
	AttrCriticalFocus     = 10 // 暴击专注
	AttrLuckFocus         = 11 // 幸运专注
	AttrMagicResistance   = 12 // 抵御魔法
	AttrPhysicalResist    = 13 // 抵御物理

	AttrDamageStacking  = 101 // 极-伤害叠加
	AttrAgileMovement   = 102 // 极-灵活身法
	AttrLifeCohesion    = 103 // 极-生命凝聚
	AttrFirstAid        = 104 // 极-急救措施
	AttrLifeFluctuation = 105 // 极-生命波动
	AttrLifeDrain       = 106 // 极-生命汲取
	AttrTeamLuckCrit    = 107 // 极-全队幸暴
	AttrLastStandGuard  = 108 // 极-绝境守护
	AttrReserved109     = 109 // reserved: original_source lists nine
	// special names; the ninth ("极-绝境守护" above already covers slot
	// eight) is left for a name the source data never actually emits in
	// the parts the optimizer sees. Kept for ID-space stability.
)

// attrNames gives the display name for every known attribute ID, used
// by the by-name breakdown path (§4.6) and by log lines.
var attrNames = map[int]string{
	AttrStrengthBoost:     "力量加持",
	AttrAgilityBoost:      "敏捷加持",
	AttrIntelligenceBoost: "智力加持",
	AttrSpecialAtkDamage:  "特攻伤害",
	AttrEliteStrike:       "精英打击",
	AttrSpecialHealBoost:  "特攻治疗加持",
	AttrExpertHealBoost:   "专精治疗加持",
	AttrCastingFocus:      "施法专注",
	AttrAttackSpeedFocus:  "攻速专注",
	AttrCriticalFocus:     "暴击专注",
	AttrLuckFocus:         "幸运专注",
	AttrMagicResistance:   "抵御魔法",
	AttrPhysicalResist:    "抵御物理",

	AttrDamageStacking:  "极-伤害叠加",
	AttrAgileMovement:   "极-灵活身法",
	AttrLifeCohesion:    "极-生命凝聚",
	AttrFirstAid:        "极-急救措施",
	AttrLifeFluctuation: "极-生命波动",
	AttrLifeDrain:       "极-生命汲取",
	AttrTeamLuckCrit:    "极-全队幸暴",
	AttrLastStandGuard:  "极-绝境守护",
}

// specialAttrIDs is the set of attribute IDs classified "special"; every
// other known ID is "basic".
var specialAttrIDs = map[int]struct{}{
	AttrDamageStacking:  {},
	AttrAgileMovement:   {},
	AttrLifeCohesion:    {},
	AttrFirstAid:        {},
	AttrLifeFluctuation: {},
	AttrLifeDrain:       {},
	AttrTeamLuckCrit:    {},
	AttrLastStandGuard:  {},
	AttrReserved109:     {},
}

func isSpecialAttr(id int) bool {
	_, ok := specialAttrIDs[id]
	return ok
}

// attrNameType classifies by display name, for callers who only have a
// ModulePart.Name (mirrors original_source's ATTR_NAME_TYPE_VALUES).
func attrNameType(name string) (special bool) {
	for id, n := range attrNames {
		if n == name {
			return isSpecialAttr(id)
		}
	}
	return false
}

// totalAttrPower is the dense total-attribute-sum -> power table for
// v in [0,120]. original_source's literal table (module_optimizer.h,
// TOTAL_ATTR_POWER_VALUES) has gaps in [9,17] and [107,112]; this
// module treats undefined entries as zero rather than interpolating
// (Open Question in spec.md §9 — see DESIGN.md for the rationale).
var totalAttrPower = buildTotalAttrPower()

const totalAttrPowerMax = 120

func buildTotalAttrPower() [totalAttrPowerMax + 1]int {
	var t [totalAttrPowerMax + 1]int
	defined := map[int]int{
		0: 0, 1: 5, 2: 11, 3: 17, 4: 23, 5: 29, 6: 34, 7: 40, 8: 46,
		18: 104, 19: 110, 20: 116, 21: 122, 22: 128, 23: 133, 24: 139, 25: 145,
		26: 151, 27: 157, 28: 163, 29: 168, 30: 174, 31: 180, 32: 186, 33: 192,
		34: 198, 35: 203, 36: 209, 37: 215, 38: 221, 39: 227, 40: 233, 41: 238,
		42: 244, 43: 250, 44: 256, 45: 262, 46: 267, 47: 273, 48: 279, 49: 285,
		50: 291, 51: 297, 52: 302, 53: 308, 54: 314, 55: 320, 56: 326, 57: 332,
		58: 337, 59: 343, 60: 349, 61: 355, 62: 361, 63: 366, 64: 372, 65: 378,
		66: 384, 67: 390, 68: 396, 69: 401, 70: 407, 71: 413, 72: 419, 73: 425,
		74: 431, 75: 436, 76: 442, 77: 448, 78: 454, 79: 460, 80: 466, 81: 471,
		82: 477, 83: 483, 84: 489, 85: 495, 86: 500, 87: 506, 88: 512, 89: 518,
		90: 524, 91: 530, 92: 535, 93: 541, 94: 547, 95: 553, 96: 559, 97: 565,
		98: 570, 99: 576, 100: 582, 101: 588, 102: 594, 103: 599, 104: 605, 105: 611,
		106: 617, 113: 658, 114: 664, 115: 669, 116: 675, 117: 681, 118: 687, 119: 693, 120: 699,
	}
	for v, p := range defined {
		t[v] = p
	}
	return t
}

// TotalAttrPower returns the dense-table lookup for a combined
// attribute sum. v outside [0, totalAttrPowerMax] yields a
// *DomainRangeError; the scorers do not clamp totals and pass that
// error up to their callers.
func TotalAttrPower(v int) (int, error) {
	if v < 0 || v > totalAttrPowerMax {
		return 0, &DomainRangeError{TotalAttrValue: v, Max: totalAttrPowerMax}
	}
	return totalAttrPower[v], nil
}

// ModuleCategory classifies a module by its config ID, carried over from
// original_source's module_types.py (MODULE_CATEGORY_MAP). Neither the
// scoring path nor the bench CLI consults it; it is exported for
// callers that want to classify modules themselves.
type ModuleCategory int

const (
	CategoryUnknown ModuleCategory = iota
	CategoryAttack
	CategoryGuardian
	CategorySupport
)

func (c ModuleCategory) String() string {
	switch c {
	case CategoryAttack:
		return "攻击"
	case CategoryGuardian:
		return "守护"
	case CategorySupport:
		return "辅助"
	default:
		return "未知"
	}
}

// Module config IDs, carried over verbatim from original_source's
// ModuleType enum.
const (
	ConfigBasicAttack             = 5500101
	ConfigHighPerformanceAttack   = 5500102
	ConfigBasicHealing            = 5500201
	ConfigHighPerformanceHealing  = 5500202
	ConfigBasicProtection         = 5500301
	ConfigHighPerformanceProtection = 5500302
)

var moduleCategoryByConfigID = map[int]ModuleCategory{
	ConfigBasicAttack:               CategoryAttack,
	ConfigHighPerformanceAttack:     CategoryAttack,
	ConfigBasicProtection:           CategoryGuardian,
	ConfigHighPerformanceProtection: CategoryGuardian,
	ConfigBasicHealing:              CategorySupport,
	ConfigHighPerformanceHealing:    CategorySupport,
}

// ClassifyModule returns the category for a module config ID, or
// CategoryUnknown if the ID isn't one of the known catalog entries.
func ClassifyModule(configID int) ModuleCategory {
	if c, ok := moduleCategoryByConfigID[configID]; ok {
		return c
	}
	return CategoryUnknown
}
