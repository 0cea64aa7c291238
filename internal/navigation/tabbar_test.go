package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTabs() []Tab {
	return []Tab{
		{Name: "home", Route: "/", Icon: "house", Label: "Home"},
		{Name: "search", Route: "/search", Icon: "magnifyingglass", Label: "Search"},
		{Name: "messages", Route: "/messages", Icon: "message", Label: "Messages"},
		{Name: "profile", Route: "/profile", Icon: "person", Label: "Profile"},
	}
}

func TestResolverResolve(t *testing.T) {
	r := NewResolver(testTabs(), Spring{Damping: 15, Stiffness: 150})

	tests := []struct {
		path  string
		index int
		ok    bool
	}{
		{"/", 0, true},
		{"", 0, true},
		{"/search", 1, true},
		{"/messages", 2, true},
		{"/messages/42", 2, true},
		{"/profile/settings", 3, true},
		{"/admin/users", 0, false},
		{"/searching", 0, false},
	}

	for _, tt := range tests {
		index, ok := r.Resolve(tt.path)
		assert.Equal(t, tt.ok, ok, "path %q", tt.path)
		if tt.ok {
			assert.Equal(t, tt.index, index, "path %q", tt.path)
		}
	}
}

func TestResolverHomeWithNonRootRoute(t *testing.T) {
	tabs := []Tab{
		{Name: "search", Route: "/search"},
		{Name: "home", Route: "/home"},
	}
	r := NewResolver(tabs, Spring{})

	index, ok := r.Resolve("/home/feed")
	require.True(t, ok)
	assert.Equal(t, 1, index)

	// The home tab also owns the bare root path.
	index, ok = r.Resolve("/")
	require.True(t, ok)
	assert.Equal(t, 1, index)
}

func TestResolverNoMatchKeepsCallerTarget(t *testing.T) {
	tabs := []Tab{{Name: "search", Route: "/search"}}
	r := NewResolver(tabs, Spring{})

	_, ok := r.Resolve("/unknown")
	assert.False(t, ok)

	_, ok = r.Resolve("/")
	assert.False(t, ok, "no home tab configured")
}

func TestResolverTabsAndSpringAreCopies(t *testing.T) {
	source := testTabs()
	r := NewResolver(source, Spring{Damping: 15, Stiffness: 150})

	source[0].Route = "/mutated"
	index, ok := r.Resolve("/")
	require.True(t, ok)
	assert.Equal(t, 0, index, "resolver keeps its own copy of the tabs")

	got := r.Tabs()
	got[1].Route = "/mutated"
	index, ok = r.Resolve("/search")
	require.True(t, ok)
	assert.Equal(t, 1, index)

	assert.Equal(t, 15.0, r.Spring().Damping)
	assert.Equal(t, 150.0, r.Spring().Stiffness)
}
