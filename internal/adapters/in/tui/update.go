package tui

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(max(msg.Width-30, 10), 60)
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.searching:
			return m.handleSearchKey(msg)
		case m.editing:
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)

	case dataLoadedMsg:
		m.loading = false
		m.err = nil
		m.orders = msg.orders
		if m.selected >= len(m.orders) {
			m.selected = max(len(m.orders)-1, 0)
		}
		if m.detailRef != "" {
			m.detail = msg.detail
		}
		return m, nil

	case transitionMsg:
		m.loading = false
		m.status = transitionStatus(msg)
		return m, m.reload()

	case fieldSavedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("%s not saved: %v", msg.field.Label(), msg.err)
			return m, nil
		}
		m.status = msg.field.Label() + " saved"
		return m, m.reload()

	case errorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tickMsg:
		if m.editing || m.searching {
			return m, tickCmd()
		}
		return m, tea.Batch(m.reload(), tickCmd())
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		return m.handleUp()

	case key.Matches(msg, m.keys.Down):
		return m.handleDown()

	case key.Matches(msg, m.keys.Enter):
		return m.handleEnter()

	case key.Matches(msg, m.keys.Back):
		return m.handleBack()

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.reload()

	case key.Matches(msg, m.keys.Advance):
		return m.handleTransition(m.advance, false)

	case key.Matches(msg, m.keys.ForceAdvance):
		return m.handleTransition(m.advance, true)

	case key.Matches(msg, m.keys.Retreat):
		return m.handleTransition(func(ref string, _ bool) tea.Cmd { return m.retreat(ref) }, false)

	case key.Matches(msg, m.keys.Edit):
		if m.view == ViewOrderDetail && m.detail != nil {
			m.view = ViewFieldEdit
			m.selectedField = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		if m.view == ViewOrderList {
			m.searching = true
			m.search.Focus()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleUp() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewOrderList:
		if len(m.orders) > 0 {
			m.selected--
			if m.selected < 0 {
				m.selected = len(m.orders) - 1
			}
		}
	case ViewFieldEdit:
		m.selectedField--
		if m.selectedField < 0 {
			m.selectedField = len(order.EditableFields()) - 1
		}
	}
	return m, nil
}

func (m Model) handleDown() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewOrderList:
		if len(m.orders) > 0 {
			m.selected++
			if m.selected >= len(m.orders) {
				m.selected = 0
			}
		}
	case ViewFieldEdit:
		m.selectedField++
		if m.selectedField >= len(order.EditableFields()) {
			m.selectedField = 0
		}
	}
	return m, nil
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewOrderList:
		if len(m.orders) > 0 {
			m.detailRef = m.orders[m.selected].Reference
			m.detail = nil
			m.view = ViewOrderDetail
			m.status = ""
			m.loading = true
			return m, m.reload()
		}
	case ViewFieldEdit:
		if m.detail == nil {
			return m, nil
		}
		f := order.EditableFields()[m.selectedField]
		m.input.Placeholder = f.Label()
		m.input.SetValue(fieldValue(m, f))
		m.input.CursorEnd()
		m.input.Focus()
		m.editing = true
	}
	return m, nil
}

func (m Model) handleBack() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewFieldEdit:
		m.view = ViewOrderDetail
	case ViewOrderDetail:
		m.view = ViewOrderList
		m.detailRef = ""
		m.detail = nil
	case ViewOrderList:
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.loading = true
			return m, m.reload()
		}
	}
	m.status = ""
	return m, nil
}

func (m Model) handleTransition(run func(string, bool) tea.Cmd, force bool) (tea.Model, tea.Cmd) {
	if m.view == ViewFieldEdit {
		return m, nil
	}
	ref := m.currentReference()
	if ref == "" {
		return m, nil
	}
	m.loading = true
	return m, run(ref, force)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		m.selected = 0
		m.loading = true
		return m, m.reload()
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.loading = true
		return m, m.reload()
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		m.input.Blur()
		f := order.EditableFields()[m.selectedField]
		m.loading = true
		return m, m.saveField(m.detailRef, f, m.input.Value())
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func fieldValue(m Model, f order.Field) string {
	if m.detail == nil {
		return ""
	}
	for _, fv := range m.detail.Fields {
		if fv.Field == f {
			return fv.Value
		}
	}
	return ""
}

func transitionStatus(msg transitionMsg) string {
	r := msg.result
	switch {
	case errors.Is(msg.err, commands.ErrTransitionIsBlocked):
		return "Blocked, missing: " + joinLabels(r.MissingFields) + " (A forces)"
	case msg.err != nil:
		return "Error: " + msg.err.Error()
	case !r.Moved && r.To == order.Completed:
		return r.Reference + " is already completed"
	case !r.Moved:
		return r.Reference + " is already at the first state"
	default:
		return fmt.Sprintf("%s: %s → %s", r.Reference, r.From.Label(), r.To.Label())
	}
}

func joinLabels(fields []order.Field) string {
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.Label()
	}
	return strings.Join(labels, ", ")
}
