package toolset

import "fmt"

// ToolSourceKind tags how a ToolVersionList originated.
type ToolSourceKind int

const (
	// SourceArgument means the request came from a CLI argument.
	SourceArgument ToolSourceKind = iota
	// SourceToolVersionsFile means the request came from a parsed
	// .tool-versions-style config file.
	SourceToolVersionsFile
	// SourceDefault means the request is a built-in/default fallback.
	SourceDefault
)

func (k ToolSourceKind) String() string {
	switch k {
	case SourceArgument:
		return "argument"
	case SourceToolVersionsFile:
		return "tool-versions-file"
	case SourceDefault:
		return "default"
	default:
		return "unknown"
	}
}

// ToolSource identifies where a ToolVersionList's requests came from: the
// provenance used to filter (e.g. install only CLI-argument tools) and to
// stamp the Toolset's "active source" on merge.
type ToolSource struct {
	kind ToolSourceKind
	path string
}

func (s ToolSource) String() string {
	if s.path != "" {
		return fmt.Sprintf("%s(%s)", s.kind, s.path)
	}
	return s.kind.String()
}

// Kind returns the ToolSource's kind.
func (s ToolSource) Kind() ToolSourceKind { return s.kind }

// Path returns the originating file path, if any.
func (s ToolSource) Path() string { return s.path }

// Equal compares two ToolSources by kind and path.
func (s ToolSource) Equal(o ToolSource) bool {
	return s.kind == o.kind && s.path == o.path
}

// NewArgumentSource builds a ToolSource for a CLI-argument-declared tool.
func NewArgumentSource() ToolSource {
	return ToolSource{kind: SourceArgument}
}

// NewFileSource builds a ToolSource for a tool declared in a config file.
func NewFileSource(path string) ToolSource {
	return ToolSource{kind: SourceToolVersionsFile, path: path}
}

// NewDefaultSource builds a ToolSource for a built-in default.
func NewDefaultSource() ToolSource {
	return ToolSource{kind: SourceDefault}
}
