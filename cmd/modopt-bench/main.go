// Command modopt-bench is a development harness for the module
// combat-power optimizer: it loads a fixture module pool, runs the
// enumeration and/or heuristic strategies, and prints a score report.
// It is not part of the engine's public API. It and the internal
// fixtures loader it imports are the only code in this repository that
// reads files.
package main

func main() {
	Execute()
}
