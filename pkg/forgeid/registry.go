package forgeid

// registry is a small, process-lifetime, read-only map of alias -> canonical
// "backend:name" string. Only Lookup is exposed.
var registry = map[string]string{
	"ubi":    "cargo:ubi",
	"python": "asdf:python",
}

// Lookup returns the canonical "backend:name" string for an alias, if any.
func Lookup(s string) (string, bool) {
	v, ok := registry[s]
	return v, ok
}
