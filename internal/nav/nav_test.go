package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/berth/internal/catalog"
)

func mkController(t *testing.T, keys ...catalog.Key) *Controller {
	t.Helper()
	b := catalog.NewBuilder()
	for _, k := range keys {
		require.NoError(t, b.Register(k, "", catalog.Static(catalog.RenderOutput{Title: string(k), Markdown: "# " + string(k)})))
	}
	reg, err := b.Build()
	require.NoError(t, err)

	c, err := New(reg)
	require.NoError(t, err)
	return c
}

// emptyResolver is a Resolver with no keys.
type emptyResolver struct{}

func (emptyResolver) Keys() []catalog.Key { return nil }
func (emptyResolver) Resolve(key catalog.Key) (catalog.Provider, error) {
	return nil, catalog.ErrUnknownKey
}
func (emptyResolver) Label(key catalog.Key) string { return string(key) }

func TestNew_EmptyCatalog(t *testing.T) {
	c, err := New(emptyResolver{})

	require.ErrorIs(t, err, ErrEmptyCatalog)
	require.Nil(t, c)
}

func TestController_InitialSelectionIsFirstKey(t *testing.T) {
	c := mkController(t, "home", "kpis", "glossary")

	require.Equal(t, catalog.Key("home"), c.Active())
	require.Equal(t, 0, c.Index())
}

func TestController_Select(t *testing.T) {
	c := mkController(t, "home", "kpis")

	require.NoError(t, c.Select("kpis"))

	require.Equal(t, catalog.Key("kpis"), c.Active())
	require.Equal(t, "Kpis", c.ActiveLabel())
}

func TestController_Select_InvalidLeavesStateUnchanged(t *testing.T) {
	c := mkController(t, "home", "kpis")
	require.NoError(t, c.Select("home"))

	err := c.Select("invalid-key")

	require.ErrorIs(t, err, ErrInvalidSelection)
	require.Equal(t, catalog.Key("home"), c.Active())
}

func TestController_SelectIndex(t *testing.T) {
	c := mkController(t, "home", "kpis", "yard")

	require.NoError(t, c.SelectIndex(2))
	require.Equal(t, catalog.Key("yard"), c.Active())

	require.ErrorIs(t, c.SelectIndex(3), ErrInvalidSelection)
	require.ErrorIs(t, c.SelectIndex(-1), ErrInvalidSelection)
	require.Equal(t, catalog.Key("yard"), c.Active())
}

func TestController_Step_Wraps(t *testing.T) {
	c := mkController(t, "a", "b", "c")

	c.Step(1)
	require.Equal(t, catalog.Key("b"), c.Active())

	c.Step(2)
	require.Equal(t, catalog.Key("a"), c.Active())

	c.Step(-1)
	require.Equal(t, catalog.Key("c"), c.Active())

	c.Step(-7)
	require.Equal(t, catalog.Key("b"), c.Active())
}

func TestController_Keys_OrderAndCopy(t *testing.T) {
	c := mkController(t, "zeta", "alpha")

	keys := c.Keys()
	require.Equal(t, []catalog.Key{"zeta", "alpha"}, keys)

	keys[0] = "mutated"
	require.Equal(t, []catalog.Key{"zeta", "alpha"}, c.Keys())
	require.Equal(t, 2, c.Len())
}

func TestController_Render(t *testing.T) {
	c := mkController(t, "home", "kpis")
	require.NoError(t, c.Select("kpis"))

	out, err := c.Render()

	require.NoError(t, err)
	require.Equal(t, "kpis", out.Title)
}

func TestController_Render_Placeholder(t *testing.T) {
	b := catalog.NewBuilder()
	require.NoError(t, b.Register("home", "Home", catalog.Static(catalog.RenderOutput{Title: "Home"})))
	require.NoError(t, b.Register("kpis", "", nil))
	reg, err := b.Build()
	require.NoError(t, err)
	c, err := New(reg)
	require.NoError(t, err)

	require.NoError(t, c.Select("kpis"))
	out, err := c.Render()

	require.NoError(t, err)
	require.Contains(t, out.Markdown, "Kpis")
	require.Contains(t, out.Markdown, "not yet available")
}

func TestController_Render_ProviderErrorPropagates(t *testing.T) {
	boom := errors.New("table source unavailable")
	b := catalog.NewBuilder()
	require.NoError(t, b.Register("broken", "", catalog.ProviderFunc(func() (catalog.RenderOutput, error) {
		return catalog.RenderOutput{}, boom
	})))
	reg, err := b.Build()
	require.NoError(t, err)
	c, err := New(reg)
	require.NoError(t, err)

	_, err = c.Render()

	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "render broken")
	require.Equal(t, catalog.Key("broken"), c.Active())
}

func TestController_Render_ResolveErrorPropagates(t *testing.T) {
	c := &Controller{registry: emptyResolver{}, keys: []catalog.Key{"ghost"}}

	_, err := c.Render()

	require.ErrorIs(t, err, catalog.ErrUnknownKey)
}
