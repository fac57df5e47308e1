package toolversion

import "testing"

func TestParseSpecConstraint(t *testing.T) {
	cases := []struct {
		spec string
		want Constraint
	}{
		{"", ConstraintLatest},
		{"latest", ConstraintLatest},
		{"lts", ConstraintLatest},
		{"20", ConstraintMajor},
		{"20.1", ConstraintMinor},
		{"20.1.2", ConstraintExact},
		{"^20", ConstraintRange},
		{"~20.1", ConstraintRange},
		{">=20.0.0 <21.0.0", ConstraintRange},
	}
	for _, c := range cases {
		s, err := ParseSpec(c.spec)
		if err != nil {
			t.Fatalf("ParseSpec(%q) error: %v", c.spec, err)
		}
		if s.Constraint != c.want {
			t.Errorf("ParseSpec(%q).Constraint = %v, want %v", c.spec, s.Constraint, c.want)
		}
	}
}

func TestParseSpecInvalid(t *testing.T) {
	if _, err := ParseSpec("^not-a-version"); err == nil {
		t.Errorf("expected error for invalid range spec")
	}
	if _, err := ParseSpec("not a version either!!"); err == nil {
		t.Errorf("expected error for invalid exact spec")
	}
}

func TestSpecMatches(t *testing.T) {
	major, _ := ParseSpec("20")
	if !major.Matches("20.5.1") {
		t.Errorf("expected major spec 20 to match 20.5.1")
	}
	if major.Matches("21.0.0") {
		t.Errorf("expected major spec 20 to reject 21.0.0")
	}

	minor, _ := ParseSpec("20.1")
	if !minor.Matches("20.1.9") {
		t.Errorf("expected minor spec 20.1 to match 20.1.9")
	}
	if minor.Matches("20.2.0") {
		t.Errorf("expected minor spec 20.1 to reject 20.2.0")
	}

	exact, _ := ParseSpec("20.1.2")
	if !exact.Matches("20.1.2") {
		t.Errorf("expected exact spec to match itself")
	}
	if exact.Matches("20.1.3") {
		t.Errorf("expected exact spec to reject a different patch")
	}

	rng, _ := ParseSpec("^20.1.0")
	if !rng.Matches("20.9.0") {
		t.Errorf("expected ^20.1.0 to match 20.9.0")
	}
	if rng.Matches("21.0.0") {
		t.Errorf("expected ^20.1.0 to reject 21.0.0")
	}

	latest, _ := ParseSpec("latest")
	if !latest.Matches("0.0.1") {
		t.Errorf("expected latest spec to match anything")
	}
}

func TestSpecResolve(t *testing.T) {
	spec, _ := ParseSpec("20")
	versions := []string{"20.1.0", "20.9.3", "19.9.9", "20.10.0"}
	got, err := spec.Resolve(versions)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got != "20.10.0" {
		t.Errorf("Resolve() = %q, want %q", got, "20.10.0")
	}
}

func TestSpecResolveNoMatch(t *testing.T) {
	spec, _ := ParseSpec("99")
	if _, err := spec.Resolve([]string{"20.1.0"}); err == nil {
		t.Errorf("expected error when no version matches the spec")
	}
}

func TestSpecResolveEmpty(t *testing.T) {
	spec, _ := ParseSpec("latest")
	if _, err := spec.Resolve(nil); err == nil {
		t.Errorf("expected error when no versions are available at all")
	}
}

func TestSortVersions(t *testing.T) {
	in := []string{"20.1.0", "not-a-version", "19.9.9", "20.10.0"}
	got := SortVersions(in)
	want := []string{"20.10.0", "20.1.0", "19.9.9"}
	if len(got) != len(want) {
		t.Fatalf("SortVersions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortVersions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCompare(t *testing.T) {
	if Compare("20.1.0", "20.2.0") >= 0 {
		t.Errorf("expected 20.1.0 < 20.2.0")
	}
	if Compare("20.2.0", "20.1.0") <= 0 {
		t.Errorf("expected 20.2.0 > 20.1.0")
	}
	if Compare("20.1.0", "20.1.0") != 0 {
		t.Errorf("expected equal versions to compare as 0")
	}
}
