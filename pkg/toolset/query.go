package toolset

import "fmt"

// Which finds the absolute path to a binary by name, searching every
// resolved, non-disabled forge in declaration order and returning the
// first match — mirroring PATH lookup semantics but scoped to the
// Toolset's own managed installs rather than the inherited PATH.
func (t *Toolset) Which(binName string) (string, bool, error) {
	for _, fa := range t.order {
		if !t.passesFilter(fa) {
			continue
		}
		backend, err := t.resolver.Get(fa)
		if err != nil {
			return "", false, fmt.Errorf("%s: %w", fa, err)
		}
		for _, tv := range t.versions[fa].Versions {
			path, ok, err := backend.Which(tv, binName)
			if err != nil {
				return "", false, fmt.Errorf("%s: %w", fa, err)
			}
			if ok {
				return path, true, nil
			}
		}
	}
	return "", false, nil
}

// ToolVersionWithBin pairs a resolved version with the forges known to
// provide a given binary, for diagnostics ("which tool provides npm?").
type ToolVersionWithBin struct {
	ToolVersion ToolVersion
	BinPath     string
}

// ListToolVersionsWithBin returns every resolved version across the
// Toolset that currently provides binName, in declaration order.
func (t *Toolset) ListToolVersionsWithBin(binName string) ([]ToolVersionWithBin, error) {
	var out []ToolVersionWithBin
	for _, fa := range t.order {
		if !t.passesFilter(fa) {
			continue
		}
		backend, err := t.resolver.Get(fa)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fa, err)
		}
		for _, tv := range t.versions[fa].Versions {
			path, ok, err := backend.Which(tv, binName)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", fa, err)
			}
			if ok {
				out = append(out, ToolVersionWithBin{ToolVersion: tv, BinPath: path})
			}
		}
	}
	return out, nil
}

// InstallMissingBin installs whichever resolved, non-disabled forge
// provides binName and isn't installed yet, if any — used to lazily
// satisfy a shim invocation for a binary nobody has installed.
func (t *Toolset) InstallMissingBin(binName string, opts InstallOptions) (bool, error) {
	installedAny := false
	for _, fa := range t.order {
		if !t.passesFilter(fa) {
			continue
		}
		backend, err := t.resolver.Get(fa)
		if err != nil {
			return false, fmt.Errorf("%s: %w", fa, err)
		}
		for _, tv := range t.versions[fa].Versions {
			if tv.IsSystem() || backend.IsVersionInstalled(tv) {
				continue
			}
			if _, ok, err := backend.Which(tv, binName); err != nil {
				return false, fmt.Errorf("%s: %w", fa, err)
			} else if !ok {
				continue
			}
			job := installJob{forge: fa, versions: []ToolVersion{tv}}
			if err := t.installJobVersions(&job, opts); err != nil {
				return installedAny, fmt.Errorf("%s: %w", fa, err)
			}
			installedAny = true
		}
	}
	return installedAny, nil
}
