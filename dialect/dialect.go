// Package dialect holds the named symbol tables used to classify
// operator words. Each dialect registers itself from its own file.
package dialect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/calc"
)

// Dialects maps a dialect name to its symbol table.
var Dialects = map[string]map[string]calc.Kind{}

// Names returns the registered dialect names, sorted.
func Names() []string {
	names := make([]string, 0, len(Dialects))
	for name := range Dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a copy of the named symbol table.
func Lookup(name string) (map[string]calc.Kind, error) {
	d, ok := Dialects[name]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	m := make(map[string]calc.Kind, len(d))
	for s, k := range d {
		m[s] = k
	}
	return m, nil
}

// Merge combines dialects in order. A later dialect wins when two of them
// bind the same symbol.
func Merge(names ...string) (map[string]calc.Kind, error) {
	m := map[string]calc.Kind{}
	for _, name := range names {
		d, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		for s, k := range d {
			m[s] = k
		}
	}
	return m, nil
}
