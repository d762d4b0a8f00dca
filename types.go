package modopt

// ModulePart is one attribute on one module: a stable domain key (ID), a
// display name, and a positive value. A module's parts are an unordered
// multiset; the scorer tolerates a repeated ID by summing.
type ModulePart struct {
	ID    int
	Name  string
	Value int
}

// ModuleInfo is one piece of equipment. Immutable for the duration of an
// optimization call — nothing in this package ever mutates a ModuleInfo
// or its Parts slice.
type ModuleInfo struct {
	Name     string
	ConfigID int
	UUID     int
	Quality  int
	Parts    []ModulePart
}

// LightweightSolution is a scoring-phase record: an ordered sequence of
// indices into the caller-supplied module list, plus the resulting
// score. It carries nothing else so it stays cheap to copy through
// channels and heaps during search.
type LightweightSolution struct {
	Indices []int
	Score   int
}

// AttrAmount is one line of a ModuleSolution's breakdown: an attribute
// name and its summed value across the 4-subset. A slice of these
// substitutes for "an ordered mapping from name to value" (Go maps have
// no order); insertion order is first-appearance order in the subset.
type AttrAmount struct {
	Name  string
	Value int
}

// ModuleSolution is a result record returned to the caller: the
// resolved modules (copies, not indices), the score, and the
// per-attribute breakdown.
type ModuleSolution struct {
	Modules   []ModuleInfo
	Score     int
	Breakdown []AttrAmount
}

// Map returns the breakdown as a plain map, for callers who don't care
// about attribute order.
func (s ModuleSolution) Map() map[string]int {
	m := make(map[string]int, len(s.Breakdown))
	for _, a := range s.Breakdown {
		m[a.Name] = a.Value
	}
	return m
}

// ThresholdLevel returns the highest per-attribute level (0-6) reached
// by any attribute in the breakdown, mirroring
// ModuleCombination.threshold_level from original_source's Python
// dataclass. It's derived on demand rather than stored, since Breakdown
// already carries the raw sums it's computed from.
func (s ModuleSolution) ThresholdLevel() int {
	best := 0
	for _, a := range s.Breakdown {
		lvl := attrLevel(a.Value)
		if lvl > best {
			best = lvl
		}
	}
	return best
}

// Constraints bundles the three caller-provided preference/requirement
// sets from spec.md §3. A zero-value Constraints applies no preference
// and no requirement.
type Constraints struct {
	// Target is the set of attribute IDs whose contribution is doubled.
	Target map[int]struct{}
	// Exclude is the set of attribute IDs whose contribution is zeroed.
	// Target takes precedence over Exclude when an ID appears in both.
	Exclude map[int]struct{}
	// MinAttrSum maps attribute ID to the minimum required total over
	// the 4-subset; combinations failing any entry are pruned
	// pre-scoring.
	MinAttrSum map[int]int
}

func (c Constraints) isTarget(id int) bool {
	if c.Target == nil {
		return false
	}
	_, ok := c.Target[id]
	return ok
}

func (c Constraints) isExcluded(id int) bool {
	if c.Exclude == nil {
		return false
	}
	_, ok := c.Exclude[id]
	return ok
}
