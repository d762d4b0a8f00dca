package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	modopt "github.com/fudiyangjin/StarResonanceAutoMod"
	"github.com/fudiyangjin/StarResonanceAutoMod/internal/fixtures"
)

var (
	scenarioPath string
	poolPath     string
	strategy     string
	jsonOut      bool
	logLevel     string
	showTopN     int
)

var rootCmd = &cobra.Command{
	Use:   "modopt-bench",
	Short: "Exercise the module combat-power optimizer against fixture pools",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one or more optimization strategies against a module pool",
	RunE:  runBench,
}

func init() {
	level, err := logrus.ParseLevel("info")
	if err == nil {
		logrus.SetLevel(level)
	}

	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML ScenarioConfig (overrides --pool/--strategy)")
	runCmd.Flags().StringVar(&poolPath, "pool", "testdata/modules.json", "Path to a JSON module pool fixture")
	runCmd.Flags().StringVar(&strategy, "strategy", "both", "Strategy to run: enumerate, heuristic, or both")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "Print results as JSON instead of a table")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error)")
	runCmd.Flags().IntVar(&showTopN, "show", 3, "Number of top solutions to print per run")

	rootCmd.AddCommand(runCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logger := logrus.New()
	logger.SetLevel(level)

	scenario := ScenarioConfig{Name: "default", Pool: poolPath, Strategy: strategy}
	if scenarioPath != "" {
		scenario, err = loadScenario(scenarioPath)
		if err != nil {
			return err
		}
	}

	modules, err := fixtures.LoadModules(scenario.Pool)
	if err != nil {
		return fmt.Errorf("loading pool %s: %w", scenario.Pool, err)
	}
	logger.Infof("loaded %d modules from %s", len(modules), scenario.Pool)

	c := modopt.Constraints{
		Target:     toIDSet(scenario.Target),
		Exclude:    toIDSet(scenario.Exclude),
		MinAttrSum: scenario.MinAttrSum,
	}

	ctx := context.Background()
	var results []RunResult

	if scenario.Strategy == "enumerate" || scenario.Strategy == "both" {
		opts := modopt.DefaultEnumerateOptions()
		opts.Logger = logger
		if scenario.Enumerate != nil {
			if scenario.Enumerate.K > 0 {
				opts.K = scenario.Enumerate.K
			}
			if scenario.Enumerate.Workers > 0 {
				opts.Workers = scenario.Enumerate.Workers
			}
		}
		start := time.Now()
		solutions, err := modopt.Enumerate(ctx, modules, c, opts)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("enumerate: %w", err)
		}
		results = append(results, summarize(scenario.Name, "enumerate", solutions, elapsed))
		if !jsonOut {
			fmt.Printf("%s / enumerate:\n", scenario.Name)
			printSolutions(solutions, showTopN)
		}
	}

	if scenario.Strategy == "heuristic" || scenario.Strategy == "both" {
		opts := modopt.DefaultHeuristicOptions()
		opts.Logger = logger
		if scenario.Heuristic != nil {
			if scenario.Heuristic.K > 0 {
				opts.K = scenario.Heuristic.K
			}
			if scenario.Heuristic.AttemptMultiplier > 0 {
				opts.AttemptMultiplier = scenario.Heuristic.AttemptMultiplier
			}
			if scenario.Heuristic.LocalSearchIterations > 0 {
				opts.LocalSearchIterations = scenario.Heuristic.LocalSearchIterations
			}
			if scenario.Heuristic.Workers > 0 {
				opts.Workers = scenario.Heuristic.Workers
			}
		}
		start := time.Now()
		solutions, err := modopt.Optimize(ctx, modules, c, opts)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("heuristic: %w", err)
		}
		results = append(results, summarize(scenario.Name, "heuristic", solutions, elapsed))
		if !jsonOut {
			fmt.Printf("%s / heuristic:\n", scenario.Name)
			printSolutions(solutions, showTopN)
		}
	}

	if jsonOut {
		return printJSON(results)
	}
	fmt.Println()
	printTable(results)
	return nil
}

// Execute runs the CLI root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
