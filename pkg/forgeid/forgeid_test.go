package forgeid

import "testing"

func TestFromString(t *testing.T) {
	cases := []struct {
		input   string
		backend Backend
		wantId  string
	}{
		{"node", Asdf, "node"},
		{"asdf:node", Asdf, "node"},
		{"cargo:eza", Cargo, "cargo:eza"},
		{"npm:prettier", Npm, "npm:prettier"},
		{"npm:@antfu/ni", Npm, "npm:@antfu/ni"},
		{"system:java", System, "system:java"},
		{"ubi", Cargo, "cargo:ubi"}, // Registry alias rewrite
		{"python", Asdf, "python"},  // Registry alias rewrites to "asdf:python"
	}

	for _, c := range cases {
		fa := FromString(c.input)
		if fa.Backend != c.backend {
			t.Errorf("FromString(%q).Backend = %v, want %v", c.input, fa.Backend, c.backend)
		}
		if fa.Id != c.wantId {
			t.Errorf("FromString(%q).Id = %q, want %q", c.input, fa.Id, c.wantId)
		}
		if fa.Input != c.input {
			t.Errorf("FromString(%q).Input = %q, want original input preserved", c.input, fa.Input)
		}
	}
}

func TestFromStringSlug(t *testing.T) {
	fa := FromString("npm:@antfu/ni")
	want := "npm-@antfu-ni"
	if fa.Id != "npm:@antfu/ni" {
		t.Fatalf("unexpected id %q", fa.Id)
	}
	gotSlug := pathUnsafe.Replace(fa.Id)
	if gotSlug != want {
		t.Errorf("slug = %q, want %q", gotSlug, want)
	}
}

func TestEqual(t *testing.T) {
	a := FromString("node")
	b := FromString("asdf:node")
	if !a.Equal(b) {
		t.Errorf("expected %q and %q to be equal by Id", a, b)
	}
	c := FromString("cargo:node")
	if a.Equal(c) {
		t.Errorf("expected %q and %q to differ", a, c)
	}
}

func TestParseBackendUnknown(t *testing.T) {
	if _, ok := ParseBackend("nope"); ok {
		t.Errorf("expected ParseBackend to reject unknown tag")
	}
}
