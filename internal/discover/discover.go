// Package discover scans the potential library for models usable by the
// simulator. A candidate survives when it constructs from defaults, is
// three-dimensional and has the native force path; everything else is
// silently skipped, never fatal.
package discover

import "github.com/san-kum/galpot/internal/potential"

type Kind int

const (
	// Single is one model instance (possibly splitting into several type
	// codes, like MN3).
	Single Kind = iota
	// Combined is a set exported as a list of instances.
	Combined
)

// Entry is one usable library export.
type Entry struct {
	Name       string
	Kind       Kind
	Components []potential.Potential
}

// Lookup resolves one exported name. Construction failures and models
// without a 3-D native force path report ok = false.
func Lookup(name string) (Entry, bool) {
	comps, err := potential.New(name, nil)
	if err != nil || len(comps) == 0 {
		return Entry{}, false
	}
	for _, p := range comps {
		if p.Dim() != 3 || !p.Native() {
			return Entry{}, false
		}
	}
	kind := Single
	if len(comps) > 1 {
		kind = Combined
	}
	return Entry{Name: name, Kind: kind, Components: comps}, true
}

// Scan enumerates every exported name and returns the usable entries in
// name order.
func Scan() []Entry {
	var entries []Entry
	for _, name := range potential.Names() {
		if e, ok := Lookup(name); ok {
			entries = append(entries, e)
		}
	}
	return entries
}
