package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	r := New(nil)

	require.True(t, r.Enabled(FlagGlossaryLiveReload))
	require.True(t, r.Enabled(FlagSidebarMouse))
	require.False(t, r.Enabled("does-not-exist"))
}

func TestNew_ConfigOverridesDefaults(t *testing.T) {
	r := New(map[string]bool{FlagGlossaryLiveReload: false, "experimental": true})

	require.False(t, r.Enabled(FlagGlossaryLiveReload))
	require.True(t, r.Enabled(FlagSidebarMouse))
	require.True(t, r.Enabled("experimental"))
}

func TestNew_DoesNotMutateDefaults(t *testing.T) {
	New(map[string]bool{FlagSidebarMouse: false})

	require.True(t, New(nil).Enabled(FlagSidebarMouse))
}

func TestNilRegistry(t *testing.T) {
	var r *Registry

	require.False(t, r.Enabled(FlagGlossaryLiveReload))
	require.Empty(t, r.All())
}

func TestAll_ReturnsCopy(t *testing.T) {
	r := New(nil)
	all := r.All()
	all[FlagSidebarMouse] = false

	require.True(t, r.Enabled(FlagSidebarMouse))
}
