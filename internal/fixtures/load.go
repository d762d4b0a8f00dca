// Package fixtures loads sample module pools from JSON for tests and
// the bench CLI. It is dev/test tooling: nothing in the engine package
// imports it, keeping the engine itself free of file I/O per
// SPEC_FULL.md §6. Parsing uses gjson, the teacher's own library for
// turning raw JSON into domain structs (reference/cooking-optimizer's
// rawparse.go does the same for its cooking-contest data).
package fixtures

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	modopt "github.com/fudiyangjin/StarResonanceAutoMod"
)

// LoadModules parses a JSON document of the shape:
//
//	{"modules": [{"name": "...", "configId": 0, "uuid": 0, "quality": 0,
//	              "parts": [{"id": 0, "name": "...", "value": 0}]}]}
func LoadModules(path string) ([]modopt.ModuleInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: read %s: %w", path, err)
	}
	return ParseModules(string(data))
}

// ParseModules is LoadModules without the filesystem hop, for tests
// that build their own JSON literals.
func ParseModules(doc string) ([]modopt.ModuleInfo, error) {
	root := gjson.Get(doc, "modules")
	if !root.Exists() {
		return nil, fmt.Errorf("fixtures: missing \"modules\" array")
	}

	var modules []modopt.ModuleInfo
	var parseErr error
	root.ForEach(func(_, m gjson.Result) bool {
		parts := parsePartsList(m.Get("parts"))
		modules = append(modules, modopt.ModuleInfo{
			Name:     m.Get("name").String(),
			ConfigID: int(m.Get("configId").Int()),
			UUID:     int(m.Get("uuid").Int()),
			Quality:  int(m.Get("quality").Int()),
			Parts:    parts,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return modules, nil
}

func parsePartsList(v gjson.Result) []modopt.ModulePart {
	var parts []modopt.ModulePart
	v.ForEach(func(_, p gjson.Result) bool {
		parts = append(parts, modopt.ModulePart{
			ID:    int(p.Get("id").Int()),
			Name:  p.Get("name").String(),
			Value: int(p.Get("value").Int()),
		})
		return true
	})
	return parts
}
