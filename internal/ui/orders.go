package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawhaven/pawdeck/internal/api"
)

// nextOrderStatus returns the fulfillment step after current, or "" when the
// order can no longer advance.
func nextOrderStatus(current string) string {
	switch current {
	case "placed":
		return "confirmed"
	case "confirmed":
		return "shipped"
	case "shipped":
		return "delivered"
	default:
		return ""
	}
}

func (m Model) handleOrdersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	orders := m.snap.Orders.Orders

	switch {
	case key.Matches(msg, m.keys.Open):
		if m.orderCursor < len(orders) {
			id := orders[m.orderCursor].ID
			m.showDetail = true
			return m, m.runOp(func(ctx context.Context) error {
				return m.store.FetchOrder(ctx, id)
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.orderCursor < len(orders) {
			order := orders[m.orderCursor]
			if order.Status == "placed" || order.Status == "confirmed" {
				id := order.ID
				return m, m.runOp(func(ctx context.Context) error {
					return m.store.CancelOrder(ctx, id)
				})
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Advance):
		role := m.snap.Auth.User.Role
		if role != api.RoleSeller && !m.snap.Auth.User.IsAdmin() {
			return m, nil
		}
		if m.orderCursor < len(orders) {
			order := orders[m.orderCursor]
			if next := nextOrderStatus(order.Status); next != "" {
				id := order.ID
				return m, m.runOp(func(ctx context.Context) error {
					return m.store.UpdateOrderStatus(ctx, id, next)
				})
			}
		}
		return m, nil
	}

	m.orderCursor = m.moveIndex(m.orderCursor, msg, len(orders))
	return m, nil
}

func (m Model) renderOrders() string {
	orders := m.snap.Orders.Orders

	if m.showDetail && m.snap.Orders.Current != nil {
		return m.renderOrderDetail(*m.snap.Orders.Current)
	}

	if len(orders) == 0 {
		return m.styles.MutedText.Render("no orders yet")
	}

	var b strings.Builder
	for i, order := range orders {
		line := fmt.Sprintf(" %-10s %-12s %-10s %9s  ",
			truncate(order.ID, 10),
			formatDate(order.CreatedAt),
			plural(len(order.Items), "item"),
			formatMoney(order.Total))
		if i == m.orderCursor {
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString(m.styles.Text.Render(line))
		}
		b.WriteString(m.styles.StatusStyle(order.Status).Render(order.Status))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderOrderDetail(order api.Order) string {
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Order " + order.ID))
	b.WriteString("  ")
	b.WriteString(m.styles.StatusStyle(order.Status).Render(order.Status))
	b.WriteString("\n\n")

	for _, item := range order.Items {
		b.WriteString(m.styles.Text.Render(fmt.Sprintf("  %-24s %8s × %d",
			truncate(item.Name, 24), formatMoney(item.Price), item.Quantity)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Text.Render("Total: " + formatMoney(order.Total)))
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render(fmt.Sprintf("Ship to %s · paid by %s · placed %s",
		order.ShippingAddress, order.PaymentMethod, formatDate(order.CreatedAt))))
	b.WriteString("\n\n")
	b.WriteString(m.styles.FaintText.Render("x cancel · esc back"))
	return b.String()
}
