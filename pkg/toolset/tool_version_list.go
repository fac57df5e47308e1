package toolset

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/forgeware/forge/pkg/forgeid"
)

// ToolVersionList is the per-forge bundle of requests plus their resolved
// versions, stamped with the ToolSource they came from.
type ToolVersionList struct {
	Forge    forgeid.ForgeId
	Requests []ToolRequest
	Versions []ToolVersion
	Source   ToolSource
}

// NewToolVersionList creates an empty list for a forge from one source.
func NewToolVersionList(fa forgeid.ForgeId, source ToolSource) ToolVersionList {
	return ToolVersionList{Forge: fa, Source: source}
}

// Resolve resolves every request in the list against its backend,
// replacing Versions wholesale. latestVersions forces "latest" resolution
// regardless of the request's declared spec.
func (l *ToolVersionList) Resolve(backend Backend, latestVersions bool) error {
	versions := make([]ToolVersion, 0, len(l.Requests))
	var errs *multierror.Error
	for _, req := range l.Requests {
		tv, err := req.Resolve(backend, latestVersions)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", l.Forge, err))
			continue
		}
		versions = append(versions, tv)
	}
	l.Versions = versions
	return errs.ErrorOrNil()
}
