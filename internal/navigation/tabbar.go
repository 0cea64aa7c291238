// Package navigation resolves the current route to a tab index for the
// floating tab bar. The animated indicator is driven outside this
// package; the resolver only ever produces the discrete target index.
package navigation

import "strings"

// Tab is one configured entry of the tab bar.
type Tab struct {
	Name  string
	Route string
	Icon  string
	Label string
}

// Spring holds the indicator animation parameters. The resolver does
// not use them; they are carried here so the animation driver and the
// resolver are configured from one place.
type Spring struct {
	Damping   float64
	Stiffness float64
}

// Resolver maps navigation paths to tab indices. Tabs keep their
// configured display order; the resolved index is an index into Tabs().
type Resolver struct {
	tabs   []Tab
	spring Spring
}

func NewResolver(tabs []Tab, spring Spring) *Resolver {
	copied := make([]Tab, len(tabs))
	copy(copied, tabs)
	return &Resolver{tabs: copied, spring: spring}
}

// Tabs returns the configured tabs in display order.
func (r *Resolver) Tabs() []Tab {
	out := make([]Tab, len(r.tabs))
	copy(out, r.tabs)
	return out
}

// Spring returns the indicator animation parameters for the driver.
func (r *Resolver) Spring() Spring {
	return r.spring
}

// Resolve returns the index of the tab owning the path. A tab matches
// its route exactly or as a path-segment prefix; the home tab also owns
// the root path. When nothing matches, ok is false and the caller
// keeps its previous indicator target.
func (r *Resolver) Resolve(path string) (index int, ok bool) {
	for i, tab := range r.tabs {
		if routeMatches(tab.Route, path) {
			return i, true
		}
	}
	if path == "" || path == "/" {
		if home := r.homeIndex(); home >= 0 {
			return home, true
		}
	}
	return 0, false
}

func (r *Resolver) homeIndex() int {
	for i, tab := range r.tabs {
		if tab.Name == "home" || tab.Route == "/" {
			return i
		}
	}
	return -1
}

// routeMatches treats "/" as matching only the root path; every other
// route matches itself and anything nested under it.
func routeMatches(route, path string) bool {
	if route == "/" {
		return path == "/" || path == ""
	}
	return path == route || strings.HasPrefix(path, route+"/")
}
