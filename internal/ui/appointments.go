package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawhaven/pawdeck/internal/api"
)

// nextAppointmentStatus returns the step after current in the booking flow.
func nextAppointmentStatus(current string) string {
	switch current {
	case "scheduled":
		return "confirmed"
	case "confirmed":
		return "completed"
	default:
		return ""
	}
}

// visibleAppointments returns the list this user works from: vets see their
// schedule, everyone else their own bookings.
func (m Model) visibleAppointments() []api.Appointment {
	if m.snap.Auth.User.Role == api.RoleVeterinary {
		return m.snap.Appointments.Schedule
	}
	return m.snap.Appointments.Mine
}

func (m Model) handleAppointmentsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	appointments := m.visibleAppointments()

	switch {
	case key.Matches(msg, m.keys.New):
		if m.snap.Auth.User.Role != api.RoleVeterinary {
			m.form = m.bookingForm()
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.apptCursor < len(appointments) {
			appointment := appointments[m.apptCursor]
			if appointment.Status == "scheduled" || appointment.Status == "confirmed" {
				id := appointment.ID
				return m, m.runOp(func(ctx context.Context) error {
					return m.store.CancelAppointment(ctx, id)
				})
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Advance):
		if m.snap.Auth.User.Role != api.RoleVeterinary {
			return m, nil
		}
		if m.apptCursor < len(appointments) {
			appointment := appointments[m.apptCursor]
			if next := nextAppointmentStatus(appointment.Status); next != "" {
				id := appointment.ID
				return m, m.runOp(func(ctx context.Context) error {
					return m.store.UpdateAppointmentStatus(ctx, id, next, "")
				})
			}
		}
		return m, nil
	}

	m.apptCursor = m.moveIndex(m.apptCursor, msg, len(appointments))
	return m, nil
}

func (m Model) bookingForm() *form {
	store := m.store
	ctx := m.ctx
	return newForm(
		"Book a veterinary appointment",
		func(values []string) tea.Cmd {
			input := api.AppointmentInput{
				PetName: values[0],
				VetID:   values[1],
				Date:    values[2],
				Slot:    values[3],
				Reason:  values[4],
			}
			if input.PetName == "" || input.Date == "" || input.Slot == "" {
				return nil
			}
			return func() tea.Msg {
				_ = store.BookAppointment(ctx, input)
				return opDoneMsg{}
			}
		},
		formField{label: "Pet name"},
		formField{label: "Vet ID", placeholder: "leave blank for any"},
		formField{label: "Date", placeholder: "2026-09-12"},
		formField{label: "Time slot", placeholder: "10:30"},
		formField{label: "Reason", placeholder: "annual checkup"},
	)
}

func (m Model) renderAppointments() string {
	appointments := m.visibleAppointments()
	isVet := m.snap.Auth.User.Role == api.RoleVeterinary

	var b strings.Builder
	if isVet {
		b.WriteString(m.styles.AccentText.Render("Schedule"))
	} else {
		b.WriteString(m.styles.AccentText.Render("My appointments"))
	}
	b.WriteString("\n\n")

	if len(appointments) == 0 {
		b.WriteString(m.styles.MutedText.Render(ternary(isVet,
			"nothing on the schedule", "no appointments · press n to book one")))
		return b.String()
	}

	for i, appointment := range appointments {
		other := appointment.VetName
		if isVet {
			other = appointment.OwnerName
		}
		line := fmt.Sprintf(" %-12s %-6s %-14s %-16s %-20s ",
			formatDate(appointment.Date),
			appointment.Slot,
			truncate(appointment.PetName, 14),
			truncate(other, 16),
			truncate(appointment.Reason, 20))
		if i == m.apptCursor {
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString(m.styles.Text.Render(line))
		}
		b.WriteString(m.styles.StatusStyle(appointment.Status).Render(appointment.Status))
		if appointment.Notes != "" {
			b.WriteString(m.styles.FaintText.Render("  " + truncate(appointment.Notes, 30)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
