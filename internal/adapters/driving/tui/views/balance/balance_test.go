package balance

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chemeq-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/chemeq-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/chemeq-cli/internal/core/domain"
	"github.com/custodia-labs/chemeq-cli/internal/core/services"
)

func newTestView(t *testing.T) *View {
	t.Helper()
	calc := services.NewCalculatorService(nil)
	catalog := services.NewCatalogService(memory.NewReactionStore())
	v := NewView(nil, nil, calc, catalog, nil)
	v.SetDimensions(100, 40)
	return v
}

func typeText(v *View, text string) {
	for _, r := range text {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// submit presses enter and feeds the resulting message back into the view.
func submit(t *testing.T, v *View) tea.Msg {
	t.Helper()
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	v.Update(msg)
	return msg
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil, nil, nil)

	require.NotNil(t, v)
	assert.False(t, v.Ready())
	assert.False(t, v.MolesFocused())
	assert.Equal(t, "Initialising...", v.View())
	assert.NotNil(t, v.Init())
}

func TestView_BalanceEquation(t *testing.T) {
	v := newTestView(t)

	typeText(v, "H2 + O2 = H2O")
	msg := submit(t, v)

	completed, ok := msg.(messages.CalculationCompleted)
	require.True(t, ok)
	require.NoError(t, completed.Err)

	require.NotNil(t, v.Result())
	assert.Equal(t, []int{2, 1, 2}, v.Result().Balanced.Coefficients)
	assert.Nil(t, v.Result().Quantities)
	assert.Equal(t, status.StateBalanced, v.Status())
	assert.Contains(t, v.View(), "H₂O")
}

func TestView_BalanceWithMoles(t *testing.T) {
	v := newTestView(t)

	typeText(v, "H2 + O2 = H2O")
	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, v.MolesFocused())
	typeText(v, "4 1")
	assert.Equal(t, "4 1", v.Moles())
	assert.Equal(t, "H2 + O2 = H2O", v.Equation())

	submit(t, v)

	require.NotNil(t, v.Result())
	q := v.Result().Quantities
	require.NotNil(t, q)
	assert.Equal(t, 1, q.LimitingIndex)
	assert.InDelta(t, 2.0, q.ProducedMoles[0], 1e-9)
	assert.Contains(t, v.View(), "Limiting reactant")
}

func TestView_EmptyEquationIgnored(t *testing.T) {
	v := newTestView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Nil(t, v.Result())
}

func TestView_ErrorClearsStaleResult(t *testing.T) {
	v := newTestView(t)

	typeText(v, "H2 + O2 = H2O")
	submit(t, v)
	require.NotNil(t, v.Result())

	v.Reset()
	typeText(v, "H2 = O2")
	submit(t, v)

	assert.Nil(t, v.Result())
	require.Error(t, v.Err())
	assert.ErrorIs(t, v.Err(), domain.ErrNoSolution)
	assert.Equal(t, status.StateError, v.Status())
	assert.Contains(t, v.View(), "no balancing solution")
}

func TestView_NoCalculator(t *testing.T) {
	v := NewView(nil, nil, nil, nil, nil)
	v.SetDimensions(80, 24)

	typeText(v, "H2 = H2")
	submit(t, v)

	assert.ErrorIs(t, v.Err(), ErrNoCalculatorService)
}

func TestView_SaveToLibrary(t *testing.T) {
	store := memory.NewReactionStore()
	catalog := services.NewCatalogService(store)
	v := NewView(nil, nil, services.NewCalculatorService(nil), catalog, nil)
	v.SetDimensions(100, 40)

	typeText(v, "H2 + O2 = H2O")
	submit(t, v)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ReactionSaved)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	v.Update(msg)

	assert.Equal(t, status.StateBalanced, v.Status())

	saved, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "H2 + O2 = H2O", saved[0].Equation)

	// Saving again collides on the name.
	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	v.Update(cmd())
	assert.ErrorIs(t, v.Err(), domain.ErrAlreadyExists)
}

func TestView_SaveWithoutResult(t *testing.T) {
	v := newTestView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.ErrorIs(t, v.Err(), ErrNothingToSave)
}

func TestView_SaveWithoutCatalog(t *testing.T) {
	v := NewView(nil, nil, services.NewCalculatorService(nil), nil, nil)
	v.SetDimensions(80, 24)

	typeText(v, "Na + Cl2 = NaCl")
	submit(t, v)
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.ErrorIs(t, v.Err(), ErrNoCatalogService)
}

func TestView_Load(t *testing.T) {
	v := newTestView(t)
	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(v, "3")

	cmd := v.Load("CH4 + O2 = CO2 + H2O")
	require.NotNil(t, cmd)

	assert.Equal(t, "CH4 + O2 = CO2 + H2O", v.Equation())
	assert.Equal(t, "", v.Moles())
	assert.False(t, v.MolesFocused())
	assert.Equal(t, status.StateBalancing, v.Status())

	v.Update(cmd())
	require.NotNil(t, v.Result())
	assert.Equal(t, []int{1, 2, 1, 2}, v.Result().Balanced.Coefficients)
}

func TestView_EscGoesToMenu(t *testing.T) {
	v := newTestView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, msg.View)
}

func TestView_ErrorOccurred(t *testing.T) {
	v := newTestView(t)

	v.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, v.Err(), "boom")
	assert.Contains(t, v.View(), "boom")
}

func TestView_LaTeXShownAsUnicode(t *testing.T) {
	settings := services.NewSettingsService(memory.NewConfigStore())
	require.NoError(t, settings.SetDisplayFormat(domain.DisplayFormatLaTeX))
	v := NewView(nil, nil, services.NewCalculatorService(nil), nil, settings)
	v.SetDimensions(100, 40)
	v.Init()

	typeText(v, "H2 + O2 = H2O")
	submit(t, v)

	view := v.View()
	assert.Contains(t, view, "H₂O")
	assert.NotContains(t, view, `\rightarrow`)
}
