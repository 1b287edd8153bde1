package report

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed templates/*.md
var builtins embed.FS

// Builtin returns one of the templates shipped with the binary.
func Builtin(name string) (*Template, error) {
	data, err := builtins.ReadFile(path.Join("templates", name+".md"))
	if err != nil {
		return nil, fmt.Errorf("unknown template: %s (must be one of %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	return Parse(name, data)
}

// BuiltinNames lists the shipped template names.
func BuiltinNames() []string {
	entries, _ := builtins.ReadDir("templates")

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}
