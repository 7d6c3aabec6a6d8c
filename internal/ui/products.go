package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawhaven/pawdeck/internal/api"
)

func (m Model) handleProductsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.snap.Products.Products

	switch {
	case key.Matches(msg, m.keys.Open):
		if m.productCursor < len(products) {
			id := products[m.productCursor].ID
			m.showDetail = true
			return m, m.runOp(func(ctx context.Context) error {
				return m.store.FetchProduct(ctx, id)
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.AddToCart):
		if m.productCursor < len(products) {
			id := products[m.productCursor].ID
			return m, m.runOp(func(ctx context.Context) error {
				return m.store.AddToCart(ctx, id, 1)
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.Review):
		if m.productCursor < len(products) {
			m.form = m.reviewForm(products[m.productCursor])
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		if m.snap.Auth.User.Role == api.RoleSeller || m.snap.Auth.User.IsAdmin() {
			m.form = m.newProductForm()
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if m.productCursor < len(products) {
			product := products[m.productCursor]
			if product.SellerID == m.snap.Auth.User.ID || m.snap.Auth.User.IsAdmin() {
				m.form = m.editProductForm(product)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		if m.productCursor < len(products) {
			product := products[m.productCursor]
			owns := product.SellerID == m.snap.Auth.User.ID
			if owns || m.snap.Auth.User.IsAdmin() {
				id := product.ID
				return m, m.runOp(func(ctx context.Context) error {
					return m.store.DeleteProduct(ctx, id)
				})
			}
		}
		return m, nil
	}

	m.productCursor = m.moveIndex(m.productCursor, msg, len(products))
	return m, nil
}

func (m Model) reviewForm(product api.Product) *form {
	store := m.store
	ctx := m.ctx
	id := product.ID
	return newForm(
		fmt.Sprintf("Review %s", product.Name),
		func(values []string) tea.Cmd {
			rating, err := strconv.Atoi(values[0])
			if err != nil || rating < 1 || rating > 5 {
				return nil
			}
			comment := values[1]
			return func() tea.Msg {
				_ = store.SubmitReview(ctx, id, rating, comment)
				return opDoneMsg{}
			}
		},
		formField{label: "Rating (1-5)", placeholder: "5"},
		formField{label: "Comment"},
	)
}

func (m Model) newProductForm() *form {
	store := m.store
	ctx := m.ctx
	return newForm(
		"List a product",
		func(values []string) tea.Cmd {
			price, _ := strconv.ParseFloat(values[3], 64)
			stock, _ := strconv.Atoi(values[4])
			input := api.ProductInput{
				Name:        values[0],
				Description: values[1],
				Category:    values[2],
				Price:       price,
				Stock:       stock,
			}
			if input.Name == "" || input.Price <= 0 {
				return nil
			}
			return func() tea.Msg {
				_ = store.CreateProduct(ctx, input)
				return opDoneMsg{}
			}
		},
		formField{label: "Name"},
		formField{label: "Description"},
		formField{label: "Category", placeholder: "food, toys, care…"},
		formField{label: "Price", placeholder: "19.99"},
		formField{label: "Stock", placeholder: "25"},
	)
}

func (m Model) editProductForm(product api.Product) *form {
	store := m.store
	ctx := m.ctx
	id := product.ID
	return newForm(
		fmt.Sprintf("Edit %s", product.Name),
		func(values []string) tea.Cmd {
			price, _ := strconv.ParseFloat(values[3], 64)
			stock, _ := strconv.Atoi(values[4])
			input := api.ProductInput{
				Name:        values[0],
				Description: values[1],
				Category:    values[2],
				Price:       price,
				Stock:       stock,
			}
			if input.Name == "" || input.Price <= 0 {
				return nil
			}
			return func() tea.Msg {
				_ = store.UpdateProduct(ctx, id, input)
				return opDoneMsg{}
			}
		},
		formField{label: "Name", initial: product.Name},
		formField{label: "Description", initial: product.Description},
		formField{label: "Category", initial: product.Category},
		formField{label: "Price", initial: strconv.FormatFloat(product.Price, 'f', 2, 64)},
		formField{label: "Stock", initial: strconv.Itoa(product.Stock)},
	)
}

func (m Model) renderProducts() string {
	products := m.snap.Products.Products

	if m.showDetail && m.snap.Products.Current != nil {
		return m.renderProductDetail(*m.snap.Products.Current)
	}

	if len(products) == 0 {
		return m.styles.MutedText.Render("the shop shelf is empty")
	}

	var b strings.Builder
	for i, product := range products {
		stock := ternary(product.Stock > 0, fmt.Sprintf("%d in stock", product.Stock), "out of stock")
		line := fmt.Sprintf(" %-22s %-10s %8s  %-12s %.1f★",
			truncate(product.Name, 22),
			truncate(product.Category, 10),
			formatMoney(product.Price),
			stock,
			product.Rating)
		if i == m.productCursor {
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString(m.styles.Text.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderProductDetail(product api.Product) string {
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render(product.Name))
	b.WriteString("  ")
	b.WriteString(m.styles.Text.Render(formatMoney(product.Price)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.MutedText.Render(product.Description))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Text.Render(fmt.Sprintf("Category: %s · Stock: %d · Rating: %.1f",
		product.Category, product.Stock, product.Rating)))
	b.WriteString("\n\n")

	if len(product.Reviews) == 0 {
		b.WriteString(m.styles.FaintText.Render("no reviews yet"))
	} else {
		b.WriteString(m.styles.AccentText.Render(plural(len(product.Reviews), "review")))
		b.WriteString("\n")
		for _, review := range product.Reviews {
			b.WriteString(m.styles.WarningText.Render("  " + strings.Repeat("★", review.Rating)))
			b.WriteString(m.styles.MutedText.Render(" " + review.UserName + "  "))
			b.WriteString(m.styles.Text.Render(review.Comment))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.FaintText.Render("b add to cart · R review · esc back"))
	return b.String()
}
