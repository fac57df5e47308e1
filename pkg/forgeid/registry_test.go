package forgeid

import "testing"

func TestLookup(t *testing.T) {
	if v, ok := Lookup("ubi"); !ok || v != "cargo:ubi" {
		t.Errorf("Lookup(\"ubi\") = %q, %v; want \"cargo:ubi\", true", v, ok)
	}
	if v, ok := Lookup("python"); !ok || v != "asdf:python" {
		t.Errorf("Lookup(\"python\") = %q, %v; want \"asdf:python\", true", v, ok)
	}
	if _, ok := Lookup("node"); ok {
		t.Errorf("expected Lookup(\"node\") to report no alias")
	}
}
