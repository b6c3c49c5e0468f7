package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{key: "kpis", want: "Kpis"},
		{key: "home", want: "Home"},
		{key: "berth-planning", want: "Berth Planning"},
		{key: "yard_operations", want: "Yard Operations"},
		{key: "intro.v2", want: "Intro V2"},
		{key: "--", want: ""},
		{key: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			require.Equal(t, tt.want, Label(tt.key))
		})
	}
}

func TestPlaceholder_DependsOnlyOnLabel(t *testing.T) {
	a, err := Placeholder("Kpis").Render()
	require.NoError(t, err)
	b, err := Placeholder("Kpis").Render()
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.Equal(t, "Kpis", a.Title)
	require.Contains(t, a.Markdown, "# Kpis")
}
