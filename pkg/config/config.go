// Package config loads project tool declarations into a
// toolset.ToolRequestSet — either a `.tool-versions`-style flat file or a
// `.forge/tools.json5`/`.yaml` structured file. Project-wide concerns
// like commands, environment, and project metadata are out of scope
// here; only the tool-declaration subset is loaded, keyed by arbitrary
// forge identities rather than any single language ecosystem's tool map.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"

	"github.com/forgeware/forge/pkg/forgeid"
	"github.com/forgeware/forge/pkg/toolset"
)

// ToolsConfig is the structured form: `.forge/tools.json5` or
// `.forge/tools.yaml`, a map of forge name -> version spec or detailed
// entry.
type ToolsConfig struct {
	Tools map[string]ToolEntry `json:"tools" yaml:"tools"`
}

// ToolEntry is one tool's declaration. A bare string in the source file
// ("node": "20") unmarshals to Version only; richer declarations use the
// full struct form.
type ToolEntry struct {
	Version string            `json:"version" yaml:"version"`
	Options map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
}

// UnmarshalYAML accepts both `tool: "20"` and `tool: {version: "20"}`.
func (t *ToolEntry) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var plain string
	if err := unmarshal(&plain); err == nil {
		t.Version = plain
		return nil
	}
	type alias ToolEntry
	return unmarshal((*alias)(t))
}

// UnmarshalJSON accepts both `"tool": "20"` and `"tool": {version: "20"}`.
func (t *ToolEntry) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json5.Unmarshal(data, &plain); err == nil {
		t.Version = plain
		return nil
	}
	type alias ToolEntry
	return json5.Unmarshal(data, (*alias)(t))
}

const configDir = ".forge"

var configFiles = []string{"tools.json5", "tools.yaml", "tools.yml", "tools.json"}

// Load locates and parses a project's tool declarations, preferring the
// structured `.forge/tools.*` file and falling back to a flat
// `.tool-versions` file in projectRoot, matching the fallback order the
// teacher's `LoadConfig` used for its own config-file search (json5 then
// yaml then plain).
func Load(projectRoot string) (toolset.ToolRequestSet, error) {
	dir := filepath.Join(projectRoot, configDir)
	for _, name := range configFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return loadStructured(path)
	}

	toolVersions := filepath.Join(projectRoot, ".tool-versions")
	if _, err := os.Stat(toolVersions); err == nil {
		return loadToolVersions(toolVersions)
	}

	return toolset.ToolRequestSet{}, nil
}

func loadStructured(path string) (toolset.ToolRequestSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return toolset.ToolRequestSet{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg ToolsConfig
	switch filepath.Ext(path) {
	case ".json5", ".json":
		if err := json5.Unmarshal(data, &cfg); err != nil {
			return toolset.ToolRequestSet{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return toolset.ToolRequestSet{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	builder := toolset.NewToolRequestSetBuilder().WithSource(toolset.NewFileSource(path))
	for name, entry := range cfg.Tools {
		fa := forgeid.FromString(name)
		builder.Add(fa, toolset.NewVersionRequest(fa, entry.Version, entry.Options))
	}
	return builder.Build(), nil
}

// loadToolVersions parses a `.tool-versions` file: one "name version[
// version...]" declaration per line, `#`-prefixed comments and blank
// lines ignored. Only the first version on a line becomes the active
// request; extras are accepted (asdf allows fallback versions) but
// unused by this core.
func loadToolVersions(path string) (toolset.ToolRequestSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return toolset.ToolRequestSet{}, fmt.Errorf("reading %s: %w", path, err)
	}

	builder := toolset.NewToolRequestSetBuilder().WithSource(toolset.NewFileSource(path))
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		fa := forgeid.FromString(fields[0])
		builder.Add(fa, toolset.NewVersionRequest(fa, fields[1], nil))
	}
	return builder.Build(), nil
}
