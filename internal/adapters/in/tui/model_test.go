package tui_test

import (
	"path/filepath"
	"testing"

	"fulfillment/internal/adapters/in/tui"
	"fulfillment/internal/adapters/out/filestore"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uowFactory struct {
	factory *filestore.FileUnitOfWorkFactory
}

func (f uowFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

func newModel(t *testing.T, references ...string) (tea.Model, ports.OrderRepository) {
	t.Helper()
	logger := logging.Discard()

	store := filestore.NewStore(filepath.Join(t.TempDir(), "orders.json"), logger)
	repo := filestore.NewFileOrderRepository(store)
	for _, ref := range references {
		item, err := order.NewLineItem("P-100", "Bearing", 4, "PRJ-7")
		require.NoError(t, err)
		o, err := order.NewOrder(ref, "ACME", []order.LineItem{item})
		require.NoError(t, err)
		require.NoError(t, repo.Add(t.Context(), o))
	}

	factory := uowFactory{factory: filestore.NewFileUnitOfWorkFactory(store)}
	m := tui.NewModel(tui.Handlers{
		ListOrders:        queries.NewListOrdersQueryHandler(repo),
		GetOrder:          queries.NewGetOrderQueryHandler(repo),
		AdvanceOrder:      commands.NewAdvanceOrderCommandHandler(factory, logger),
		RetreatOrder:      commands.NewRetreatOrderCommandHandler(factory, logger),
		UpdateOrderFields: commands.NewUpdateOrderFieldsCommandHandler(factory, logger),
	})

	var model tea.Model = m
	model, _ = model.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	model = press(t, model, "r")
	return model, repo
}

// run executes cmd and feeds each resulting message back into the model
// until no command is left.
func run(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 20, "command chain did not settle")
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				m = run(t, m, c)
			}
			return m
		}
		m, cmd = m.Update(msg)
	}
	return m
}

func press(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		m = run(t, m, cmd)
	}
	return m
}

func stateOf(t *testing.T, repo ports.OrderRepository, reference string) order.State {
	t.Helper()
	o, err := repo.Get(t.Context(), reference)
	require.NoError(t, err)
	return o.State()
}

func TestModel_ListView(t *testing.T) {
	m, _ := newModel(t, "OF-2025-001", "OF-2025-002")

	view := m.View()
	assert.Contains(t, view, "Purchase Order Tracker")
	assert.Contains(t, view, "OF-2025-001")
	assert.Contains(t, view, "OF-2025-002")
	assert.Contains(t, view, "Offer")
	assert.Contains(t, view, "Orders: 2")
}

func TestModel_EmptyList(t *testing.T) {
	m, _ := newModel(t)

	assert.Contains(t, m.View(), "No orders found.")
}

func TestModel_AdvanceFromList(t *testing.T) {
	m, repo := newModel(t, "OF-1", "OF-2")

	m = press(t, m, "down", "a")

	assert.Equal(t, order.OfferReceived, stateOf(t, repo, "OF-1"))
	assert.Equal(t, order.OrderDraft, stateOf(t, repo, "OF-2"))
	assert.Contains(t, m.View(), "OF-2: Offer received → Order draft")
}

func TestModel_DetailGateAndForce(t *testing.T) {
	m, repo := newModel(t, "OF-1")

	m = press(t, m, "enter")
	view := m.View()
	assert.Contains(t, view, "Order OF-1")
	assert.Contains(t, view, "Ready to advance")
	assert.Contains(t, view, "order created")

	m = press(t, m, "a")
	assert.Equal(t, order.OrderDraft, stateOf(t, repo, "OF-1"))
	assert.Contains(t, m.View(), "Missing before advancing: Requisition ID, Internal order number")

	m = press(t, m, "a")
	assert.Equal(t, order.OrderDraft, stateOf(t, repo, "OF-1"))
	assert.Contains(t, m.View(), "Blocked, missing: Requisition ID, Internal order number")

	m = press(t, m, "A")
	assert.Equal(t, order.OrderSubmittedUnsigned, stateOf(t, repo, "OF-1"))

	m = press(t, m, "b")
	assert.Equal(t, order.OrderDraft, stateOf(t, repo, "OF-1"))

	m = press(t, m, "esc")
	assert.Contains(t, m.View(), "Purchase Order Tracker")
}

func TestModel_EditField(t *testing.T) {
	m, repo := newModel(t, "OF-1")

	m = press(t, m, "enter", "e")
	assert.Contains(t, m.View(), "Edit OF-1")

	// supplier email, offer document, order number, requisition id
	m = press(t, m, "down", "down", "down", "enter", "R", "E", "Q", "-", "7", "enter")

	o, err := repo.Get(t.Context(), "OF-1")
	require.NoError(t, err)
	assert.Equal(t, "REQ-7", o.RequisitionID())
	assert.Contains(t, m.View(), "Requisition ID saved")

	// internal order number rejects text
	m = press(t, m, "down", "enter", "x", "enter")
	assert.Contains(t, m.View(), "Internal order number not saved")

	m = press(t, m, "esc", "esc")
	assert.Contains(t, m.View(), "Purchase Order Tracker")
}

func TestModel_Search(t *testing.T) {
	m, _ := newModel(t, "OF-2025-001", "XX-9")

	m = press(t, m, "/", "x", "x", "enter")
	view := m.View()
	assert.Contains(t, view, "XX-9")
	assert.NotContains(t, view, "OF-2025-001")

	m = press(t, m, "esc")
	assert.Contains(t, m.View(), "OF-2025-001")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newModel(t, "OF-1")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
