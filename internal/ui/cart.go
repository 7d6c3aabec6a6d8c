package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawhaven/pawdeck/internal/api"
)

// handleCartKey applies quantity edits optimistically: the store mutates
// before the request is sent, so the rendered cart never waits on the
// network. The confirm command reconciles with the server afterwards.
func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.snap.Cart.Items

	switch {
	case key.Matches(msg, m.keys.Increment):
		if m.cartCursor < len(items) {
			line := items[m.cartCursor]
			quantity := line.Quantity + 1
			m.store.OptimisticSetQuantity(line.ProductID, quantity)
			refresh := m.refresh()
			return m, tea.Batch(refresh, m.runOp(func(ctx context.Context) error {
				return m.store.ConfirmSetQuantity(ctx, line.ProductID, quantity)
			}))
		}
		return m, nil

	case key.Matches(msg, m.keys.Decrement):
		if m.cartCursor < len(items) {
			line := items[m.cartCursor]
			if line.Quantity <= 1 {
				return m, nil
			}
			quantity := line.Quantity - 1
			m.store.OptimisticSetQuantity(line.ProductID, quantity)
			refresh := m.refresh()
			return m, tea.Batch(refresh, m.runOp(func(ctx context.Context) error {
				return m.store.ConfirmSetQuantity(ctx, line.ProductID, quantity)
			}))
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		if m.cartCursor < len(items) {
			line := items[m.cartCursor]
			itemID, ok := m.store.CartItemID(line.ProductID)
			if !ok {
				itemID = line.ID
			}
			m.store.OptimisticRemove(line.ProductID)
			refresh := m.refresh()
			return m, tea.Batch(refresh, m.runOp(func(ctx context.Context) error {
				return m.store.ConfirmRemove(ctx, itemID)
			}))
		}
		return m, nil

	case key.Matches(msg, m.keys.Checkout):
		if len(items) > 0 {
			m.form = m.checkoutForm()
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearCart):
		if len(items) > 0 {
			return m, m.runOp(m.store.ClearCart)
		}
		return m, nil
	}

	m.cartCursor = m.moveIndex(m.cartCursor, msg, len(items))
	return m, nil
}

func (m Model) checkoutForm() *form {
	store := m.store
	ctx := m.ctx
	return newForm(
		"Checkout",
		func(values []string) tea.Cmd {
			input := api.OrderInput{
				ShippingAddress: values[0],
				PaymentMethod:   values[1],
			}
			if input.ShippingAddress == "" {
				return nil
			}
			if input.PaymentMethod == "" {
				input.PaymentMethod = "card"
			}
			return func() tea.Msg {
				_ = store.CreateOrder(ctx, input)
				return opDoneMsg{}
			}
		},
		formField{label: "Shipping address", placeholder: "12 Bark Lane, Dogtown"},
		formField{label: "Payment method", placeholder: "card"},
	)
}

func (m Model) renderCart() string {
	cart := m.snap.Cart

	if len(cart.Items) == 0 {
		return m.styles.MutedText.Render("your cart is empty · press s to browse the shop")
	}

	var b strings.Builder
	for i, line := range cart.Items {
		row := fmt.Sprintf(" %-24s %8s × %-3d = %9s ",
			truncate(line.Name, 24),
			formatMoney(line.Price),
			line.Quantity,
			formatMoney(line.Price*float64(line.Quantity)))
		if i == m.cartCursor {
			b.WriteString(m.styles.Selected.Render(row))
		} else {
			b.WriteString(m.styles.Text.Render(row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.AccentText.Render(fmt.Sprintf("%s · total %s",
		plural(cart.ItemCount, "item"), formatMoney(cart.Total))))
	return b.String()
}
