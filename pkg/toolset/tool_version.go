package toolset

import (
	"fmt"

	"github.com/forgeware/forge/pkg/forgeid"
	"github.com/forgeware/forge/pkg/toolversion"
)

// ToolVersion is a resolved, concrete version derived from a ToolRequest.
type ToolVersion struct {
	Forge   forgeid.ForgeId
	Version string
	Request ToolRequest
}

func (tv ToolVersion) String() string {
	return fmt.Sprintf("%s@%s", tv.Forge, tv.Version)
}

// Style is a short human label for progress reporting.
func (tv ToolVersion) Style() string {
	return tv.String()
}

// IsSystem reports whether this version is the RequestSystem passthrough,
// which is never installed and never contributes to the env add-path set
// the way a concrete install does.
func (tv ToolVersion) IsSystem() bool {
	return tv.Request.Kind == RequestSystem
}

// LatestVersion asks the backend for the most recent version matching
// this tool version's original request's spec.
func (tv ToolVersion) LatestVersion(backend Backend) (string, error) {
	versions, err := backend.ListVersions()
	if err != nil {
		return "", err
	}
	spec, err := toolversion.ParseSpec(tv.Request.Version)
	if err != nil {
		return "", err
	}
	return spec.Resolve(versions)
}
