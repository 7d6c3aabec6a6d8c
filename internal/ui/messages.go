package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawhaven/pawdeck/internal/api"
)

func (m Model) handleMessagesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	messages := m.snap.Messages.Messages

	switch {
	case key.Matches(msg, m.keys.Open):
		if m.msgCursor < len(messages) {
			message := messages[m.msgCursor]
			m.showDetail = true
			if !message.Read {
				id := message.ID
				return m, m.runOp(func(ctx context.Context) error {
					return m.store.MarkMessageRead(ctx, id)
				})
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.form = m.composeForm()
		return m, nil
	}

	m.msgCursor = m.moveIndex(m.msgCursor, msg, len(messages))
	return m, nil
}

func (m Model) composeForm() *form {
	store := m.store
	ctx := m.ctx
	return newForm(
		"Compose message",
		func(values []string) tea.Cmd {
			input := api.MessageInput{
				To:      values[0],
				Subject: values[1],
				Body:    values[2],
			}
			if input.To == "" || input.Body == "" {
				return nil
			}
			return func() tea.Msg {
				_ = store.SendMessage(ctx, input)
				return opDoneMsg{}
			}
		},
		formField{label: "To", placeholder: "user id or email"},
		formField{label: "Subject"},
		formField{label: "Body"},
	)
}

func (m Model) renderMessages() string {
	messages := m.snap.Messages.Messages

	if m.showDetail && m.msgCursor < len(messages) {
		return m.renderMessageDetail(messages[m.msgCursor])
	}

	if len(messages) == 0 {
		return m.styles.MutedText.Render("inbox empty · press n to write a message")
	}

	var b strings.Builder
	for i, message := range messages {
		marker := ternary(message.Read, "  ", "● ")
		line := fmt.Sprintf(" %s%-20s %-34s %s",
			marker,
			truncate(message.From, 20),
			truncate(message.Subject, 34),
			formatDate(message.CreatedAt))
		switch {
		case i == m.msgCursor:
			b.WriteString(m.styles.Selected.Render(line))
		case !message.Read:
			b.WriteString(m.styles.InfoText.Render(line))
		default:
			b.WriteString(m.styles.Text.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderMessageDetail(message api.Message) string {
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render(message.Subject))
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render(fmt.Sprintf("from %s · %s",
		message.From, formatDate(message.CreatedAt))))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Text.Render(message.Body))
	b.WriteString("\n\n")
	b.WriteString(m.styles.FaintText.Render("esc back"))
	return b.String()
}
