package tui

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewType is the screen currently shown.
type ViewType int

const (
	ViewOrderList   ViewType = iota // every order
	ViewOrderDetail                 // one order with its gate and history
	ViewFieldEdit                   // editable fields of one order
)

const refreshInterval = 5 * time.Second

// Handlers groups the use cases the terminal UI drives.
type Handlers struct {
	ListOrders        queries.ListOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	AdvanceOrder      commands.AdvanceOrderCommandHandler
	RetreatOrder      commands.RetreatOrderCommandHandler
	UpdateOrderFields commands.UpdateOrderFieldsCommandHandler
}

// Model is the main TUI model.
type Model struct {
	handlers Handlers

	orders   []queries.OrderSummaryResponse
	selected int

	view ViewType

	// detailRef is the order open in the detail and edit views
	detailRef string
	detail    *queries.OrderDetailsResponse

	selectedField int

	search    textinput.Model
	searching bool

	input   textinput.Model
	editing bool

	bar progress.Model

	width  int
	height int

	loading bool
	err     error
	status  string

	keys keyMap
}

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Enter        key.Binding
	Back         key.Binding
	Quit         key.Binding
	Refresh      key.Binding
	Advance      key.Binding
	ForceAdvance key.Binding
	Retreat      key.Binding
	Edit         key.Binding
	Search       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Advance: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "advance"),
		),
		ForceAdvance: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "force advance"),
		),
		Retreat: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "retreat"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit fields"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
	}
}

// NewModel creates the TUI model.
func NewModel(handlers Handlers) Model {
	search := newInput("search reference")
	search.Prompt = "/ "

	return Model{
		handlers: handlers,
		view:     ViewOrderList,
		search:   search,
		input:    newInput(""),
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		keys:     defaultKeyMap(),
		loading:  true,
	}
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.reload(),
		tickCmd(),
	)
}

// Messages

type dataLoadedMsg struct {
	orders []queries.OrderSummaryResponse
	detail *queries.OrderDetailsResponse
}

type transitionMsg struct {
	result commands.TransitionResult
	err    error
}

type fieldSavedMsg struct {
	field order.Field
	err   error
}

type errorMsg struct {
	err error
}

type tickMsg time.Time

// Commands

// reload fetches the order list and, when an order is open, its details.
func (m Model) reload() tea.Cmd {
	search := m.search.Value()
	ref := m.detailRef
	return func() tea.Msg {
		ctx := context.Background()

		orders, err := m.handlers.ListOrders.Handle(ctx, queries.NewListOrdersQuery(search, order.Unknown))
		if err != nil {
			return errorMsg{err: err}
		}

		msg := dataLoadedMsg{orders: orders}
		if ref == "" {
			return msg
		}

		query, err := queries.NewGetOrderQuery(ref)
		if err != nil {
			return errorMsg{err: err}
		}
		details, err := m.handlers.GetOrder.Handle(ctx, query)
		if err != nil {
			return errorMsg{err: err}
		}
		msg.detail = &details
		return msg
	}
}

func (m Model) advance(reference string, force bool) tea.Cmd {
	return func() tea.Msg {
		cmd, err := commands.NewAdvanceOrderCommand(reference, "", !force)
		if err != nil {
			return transitionMsg{err: err}
		}
		result, err := m.handlers.AdvanceOrder.Handle(context.Background(), cmd)
		return transitionMsg{result: result, err: err}
	}
}

func (m Model) retreat(reference string) tea.Cmd {
	return func() tea.Msg {
		cmd, err := commands.NewRetreatOrderCommand(reference, "")
		if err != nil {
			return transitionMsg{err: err}
		}
		result, err := m.handlers.RetreatOrder.Handle(context.Background(), cmd)
		return transitionMsg{result: result, err: err}
	}
}

func (m Model) saveField(reference string, f order.Field, value string) tea.Cmd {
	return func() tea.Msg {
		cmd, err := commands.NewUpdateOrderFieldsCommand(reference, map[string]string{string(f): value})
		if err != nil {
			return fieldSavedMsg{field: f, err: err}
		}
		return fieldSavedMsg{field: f, err: m.handlers.UpdateOrderFields.Handle(context.Background(), cmd)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// currentReference is the order the transition keys act on.
func (m Model) currentReference() string {
	if m.view != ViewOrderList {
		return m.detailRef
	}
	if len(m.orders) == 0 {
		return ""
	}
	return m.orders[m.selected].Reference
}
