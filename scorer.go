package modopt

// attrAccumCap is the fixed capacity of the flat per-attribute
// accumulator used on the scoring hot path. The domain has at most ~20
// distinct attribute IDs across a 4-module subset (spec.md §4.2), so a
// flat array with linear probing beats a general-purpose map here — the
// spec explicitly calls this out as a re-architecture the source already
// does (module_optimizer.cpp's std::array<int,20>).
const attrAccumCap = 20

// attrLevel returns the count of attrThresholds entries sum meets or
// exceeds, i.e. the level in {0..6} a per-attribute sum has reached.
func attrLevel(sum int) int {
	level := 0
	for _, t := range attrThresholds {
		if sum >= t {
			level++
		} else {
			break
		}
	}
	return level
}

func attrBasePower(id int, level int) int {
	if level == 0 {
		return 0
	}
	if isSpecialAttr(id) {
		return specialAttrPower[level-1]
	}
	return basicAttrPower[level-1]
}

// scoreByIndices is the hot-path scorer of spec.md §4.2. indices name
// modules in the caller-supplied slice; typically len(indices) == 4 in
// enumeration, but the heuristic strategy calls it transiently with 2 or
// 3 during greedy construction.
func scoreByIndices(indices []int, modules []ModuleInfo, c Constraints) (int, error) {
	var attrIDs [attrAccumCap]int
	var attrValues [attrAccumCap]int
	count := 0
	totalSum := 0

	for _, idx := range indices {
		for _, part := range modules[idx].Parts {
			i := 0
			for ; i < count; i++ {
				if attrIDs[i] == part.ID {
					attrValues[i] += part.Value
					break
				}
			}
			if i == count {
				attrIDs[count] = part.ID
				attrValues[count] = part.Value
				count++
			}
			totalSum += part.Value
		}
	}

	thresholdPower := 0
	for i := 0; i < count; i++ {
		id := attrIDs[i]
		level := attrLevel(attrValues[i])
		base := attrBasePower(id, level)
		if base == 0 {
			continue
		}
		switch {
		case c.isTarget(id):
			thresholdPower += 2 * base
		case c.isExcluded(id):
			// contribution zeroed
		default:
			thresholdPower += base
		}
	}

	totalPower, err := TotalAttrPower(totalSum)
	if err != nil {
		return 0, err
	}
	return thresholdPower + totalPower, nil
}

// minAttrSumSatisfied checks a 4-subset against Constraints.MinAttrSum,
// pruning it pre-scoring per spec.md §4.4 step 2. It walks every part of
// every selected module for each constrained ID, exactly like
// original_source's ProcessCombinationRange.
func minAttrSumSatisfied(indices []int, modules []ModuleInfo, minSum map[int]int) bool {
	if len(minSum) == 0 {
		return true
	}
	for attrID, need := range minSum {
		got := 0
		for _, idx := range indices {
			for _, p := range modules[idx].Parts {
				if p.ID == attrID {
					got += p.Value
				}
			}
		}
		if got < need {
			return false
		}
	}
	return true
}

// scoreByName is the §4.6 variant used only at hydration time: it
// accumulates per-attribute sums keyed by display name, returns the
// total combat power (no target/exclude multipliers — breakdown reports
// raw sums), and the breakdown itself in first-appearance order.
func scoreByName(indices []int, modules []ModuleInfo) (int, []AttrAmount, error) {
	order := make([]string, 0, attrAccumCap)
	sums := make(map[string]int, attrAccumCap)
	totalSum := 0

	for _, idx := range indices {
		for _, part := range modules[idx].Parts {
			if _, ok := sums[part.Name]; !ok {
				order = append(order, part.Name)
			}
			sums[part.Name] += part.Value
			totalSum += part.Value
		}
	}

	thresholdPower := 0
	breakdown := make([]AttrAmount, 0, len(order))
	for _, name := range order {
		sum := sums[name]
		level := attrLevel(sum)
		if level > 0 {
			if attrNameType(name) {
				thresholdPower += specialAttrPower[level-1]
			} else {
				thresholdPower += basicAttrPower[level-1]
			}
		}
		breakdown = append(breakdown, AttrAmount{Name: name, Value: sum})
	}

	totalPower, err := TotalAttrPower(totalSum)
	if err != nil {
		return 0, nil, err
	}
	return thresholdPower + totalPower, breakdown, nil
}

// hydrate turns a LightweightSolution into a full ModuleSolution by
// copying the chosen modules and recomputing the breakdown via the
// by-name path, per spec.md §4.4 "Hydration".
func hydrate(sol LightweightSolution, modules []ModuleInfo) (ModuleSolution, error) {
	resolved := make([]ModuleInfo, len(sol.Indices))
	for i, idx := range sol.Indices {
		resolved[i] = modules[idx]
	}
	_, breakdown, err := scoreByName(sol.Indices, modules)
	if err != nil {
		return ModuleSolution{}, err
	}
	return ModuleSolution{Modules: resolved, Score: sol.Score, Breakdown: breakdown}, nil
}
