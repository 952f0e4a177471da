package tui

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/order"
)

const historyLines = 8

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.view {
	case ViewOrderDetail:
		return m.renderDetailView()
	case ViewFieldEdit:
		return m.renderEditView()
	default:
		return m.renderListView()
	}
}

func (m Model) renderListView() string {
	var b strings.Builder

	b.WriteString(styleHeader.Width(m.width).Render("  Purchase Order Tracker"))
	b.WriteString("\n\n")
	m.writeNotices(&b)

	if m.searching || m.search.Value() != "" {
		b.WriteString("  " + m.search.View())
		b.WriteString("\n\n")
	}

	tableHeader := fmt.Sprintf("  %-20s │ %-18s │ %-10s │ %-22s │ %s",
		"Reference", "Supplier", "State", "Progress", "Gate")
	b.WriteString(styleTableHeader.Width(m.width).Render(tableHeader))
	b.WriteString("\n")
	b.WriteString(styleMuted().Render(strings.Repeat("─", m.width)))
	b.WriteString("\n")

	if len(m.orders) == 0 {
		b.WriteString(styleMuted().Render("  No orders found."))
		b.WriteString("\n")
	} else {
		visibleRows := max(m.height-12, 5)

		startIdx := 0
		if m.selected >= visibleRows {
			startIdx = m.selected - visibleRows + 1
		}
		endIdx := min(startIdx+visibleRows, len(m.orders))

		for i := startIdx; i < endIdx; i++ {
			o := m.orders[i]
			row := fmt.Sprintf("  %-20s │ %-18s │ %-10s │ %s %3d%% │ %s",
				truncate(o.Reference, 20),
				truncate(o.Supplier, 18),
				truncate(o.State.ShortLabel(), 10),
				ProgressBar(o.Progress, 16),
				o.Progress,
				GateIcon(o.CanAdvance),
			)
			if i == m.selected {
				b.WriteString(styleTableRowSelected.Width(m.width).Render(row))
			} else {
				b.WriteString(styleTableRow.Render(row))
			}
			b.WriteString("\n")
		}

		if len(m.orders) > visibleRows {
			b.WriteString(styleMuted().Render(
				fmt.Sprintf("  Showing %d-%d of %d orders", startIdx+1, endIdx, len(m.orders))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderListSummary())
	b.WriteString("\n\n")
	b.WriteString(styleHelp.Render(
		"  [↑/↓] Navigate  [Enter] Open  [a] Advance  [A] Force  [b] Retreat  [/] Search  [r] Refresh  [q] Quit"))

	return b.String()
}

func (m Model) renderListSummary() string {
	blocked := 0
	completed := 0
	for _, o := range m.orders {
		if !o.CanAdvance {
			blocked++
		}
		if o.State == order.Completed {
			completed++
		}
	}
	return fmt.Sprintf("  Orders: %d   %s %d ready   %s %d blocked   Completed: %d",
		len(m.orders),
		GateIcon(true), len(m.orders)-blocked,
		GateIcon(false), blocked,
		completed,
	)
}

func (m Model) renderDetailView() string {
	var b strings.Builder

	b.WriteString(styleHeader.Width(m.width).Render("  Order " + m.detailRef))
	b.WriteString("\n\n")
	m.writeNotices(&b)

	d := m.detail
	if d == nil {
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  %s  %s\n", styleValue.Render(d.State.Label()), m.bar.ViewAs(float64(d.Progress)/100)))
	b.WriteString("  " + renderSteps(d.State))
	b.WriteString("\n\n")

	var info strings.Builder
	writeRow(&info, "Supplier", d.Supplier)
	writeRow(&info, "Created", d.CreatedAt.Local().Format("2006-01-02 15:04"))
	for _, f := range d.Fields {
		value := f.Value
		if value == "" {
			value = styleMuted().Render("—")
		}
		if f.Required && f.Value == "" {
			value = styleBlocked.Render("required")
		}
		writeRow(&info, f.Label, value)
	}
	b.WriteString(styleDetailBox.Render(strings.TrimRight(info.String(), "\n")))
	b.WriteString("\n\n")

	if len(d.MissingFields) > 0 {
		b.WriteString(styleBlocked.Render("  Missing before advancing: " + joinLabels(d.MissingFields)))
	} else {
		b.WriteString(styleReady.Render("  Ready to advance"))
	}
	b.WriteString("\n\n")

	b.WriteString(styleTableHeader.Render(fmt.Sprintf("  Line items (%d)", len(d.LineItems))))
	b.WriteString("\n")
	for _, li := range d.LineItems {
		b.WriteString(fmt.Sprintf("  %-12s %-30s x%-5d %s\n", li.Code, truncate(li.Description, 30), li.Quantity, li.Project))
	}
	b.WriteString("\n")

	b.WriteString(styleTableHeader.Render("  History"))
	b.WriteString("\n")
	start := max(len(d.History)-historyLines, 0)
	for i := len(d.History) - 1; i >= start; i-- {
		h := d.History[i]
		b.WriteString(fmt.Sprintf("  %s  %-10s %s\n",
			h.Timestamp.Local().Format("2006-01-02 15:04"), h.State.ShortLabel(), h.Comment))
	}
	b.WriteString("\n")

	b.WriteString(styleHelp.Render("  [a] Advance  [A] Force  [b] Retreat  [e] Edit fields  [r] Refresh  [esc] Back  [q] Quit"))
	return b.String()
}

func (m Model) renderEditView() string {
	var b strings.Builder

	b.WriteString(styleHeader.Width(m.width).Render("  Edit " + m.detailRef))
	b.WriteString("\n\n")
	m.writeNotices(&b)

	required := map[order.Field]bool{}
	if m.detail != nil {
		for _, f := range m.detail.State.RequiredFields() {
			required[f] = true
		}
	}

	for i, f := range order.EditableFields() {
		marker := "  "
		if required[f] {
			marker = styleBlocked.Render("* ")
		}
		value := fieldValue(m, f)
		if i == m.selectedField && m.editing {
			value = m.input.View()
		}
		line := fmt.Sprintf("%s%s %s", marker, styleLabel.Render(f.Label()), value)
		if i == m.selectedField {
			b.WriteString(styleTableRowSelected.Render(line))
		} else {
			b.WriteString(styleTableRow.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.editing {
		b.WriteString(styleHelp.Render("  [Enter] Save  [esc] Cancel"))
	} else {
		b.WriteString(styleHelp.Render("  [↑/↓] Select  [Enter] Edit  [esc] Back  [q] Quit"))
	}
	return b.String()
}

func (m Model) writeNotices(b *strings.Builder) {
	if m.err != nil {
		b.WriteString(styleError.Render(fmt.Sprintf("  Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	if m.status != "" {
		b.WriteString(styleStatus.Render(m.status))
		b.WriteString("\n\n")
	}
	if m.loading {
		b.WriteString(styleMuted().Render("  Loading..."))
		b.WriteString("\n\n")
	}
}

// renderSteps draws every state's short label, highlighting the current one.
func renderSteps(current order.State) string {
	steps := make([]string, 0, order.TotalStates)
	for _, s := range order.OrderedStates() {
		switch {
		case current.IsValid() && s.Position() < current.Position():
			steps = append(steps, styleStepDone.Render(s.ShortLabel()))
		case s == current:
			steps = append(steps, styleStepCurrent.Render(" "+s.ShortLabel()+" "))
		default:
			steps = append(steps, styleStepPending.Render(s.ShortLabel()))
		}
	}
	return strings.Join(steps, styleMuted().Render(" › "))
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(styleLabel.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
