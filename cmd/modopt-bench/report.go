package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gonum.org/v1/gonum/stat"

	modopt "github.com/fudiyangjin/StarResonanceAutoMod"
)

// RunResult is one strategy's outcome for one scenario, in the
// teacher's BenchOutput/ContestResult shape (reference/cooking-optimizer's
// main.go), generalized from a single contest to a named strategy run.
type RunResult struct {
	Scenario   string    `json:"scenario"`
	Strategy   string    `json:"strategy"`
	Solutions  int       `json:"solutions"`
	TopScore   int       `json:"topScore"`
	MeanScore  float64   `json:"meanScore"`
	StdevScore float64   `json:"stdevScore"`
	TimeMs     int64     `json:"timeMs"`
	Date       time.Time `json:"date"`
}

// summarize computes the score-distribution statistics gonum's stat
// package is built for. The engine itself never depends on gonum — this
// is purely a reporting concern of the bench harness.
func summarize(scenario, strategy string, solutions []modopt.ModuleSolution, elapsed time.Duration) RunResult {
	if len(solutions) == 0 {
		return RunResult{Scenario: scenario, Strategy: strategy, TimeMs: elapsed.Milliseconds()}
	}
	scores := make([]float64, len(solutions))
	for i, s := range solutions {
		scores[i] = float64(s.Score)
	}
	mean, stdev := stat.MeanStdDev(scores, nil)
	return RunResult{
		Scenario:   scenario,
		Strategy:   strategy,
		Solutions:  len(solutions),
		TopScore:   solutions[0].Score,
		MeanScore:  mean,
		StdevScore: stdev,
		TimeMs:     elapsed.Milliseconds(),
	}
}

func printTable(results []RunResult) {
	fmt.Printf("%-20s %-10s %6s %8s %8s %8s %8s\n", "Scenario", "Strategy", "N", "Top", "Mean", "Stdev", "Time")
	fmt.Println("------------------------------------------------------------------------")
	for _, r := range results {
		fmt.Printf("%-20s %-10s %6d %8d %8.1f %8.1f %6dms\n",
			r.Scenario, r.Strategy, r.Solutions, r.TopScore, r.MeanScore, r.StdevScore, r.TimeMs)
	}
}

func printJSON(results []RunResult) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func printSolutions(solutions []modopt.ModuleSolution, limit int) {
	if limit > len(solutions) {
		limit = len(solutions)
	}
	for i := 0; i < limit; i++ {
		s := solutions[i]
		names := make([]string, len(s.Modules))
		for j, m := range s.Modules {
			names[j] = m.Name
		}
		fmt.Printf("  #%d score=%d %v\n", i+1, s.Score, names)
	}
}
