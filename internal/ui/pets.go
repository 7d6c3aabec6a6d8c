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

func (m Model) handlePetsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pets := m.snap.Pets.Pets

	switch {
	case key.Matches(msg, m.keys.Open):
		if m.petCursor < len(pets) {
			id := pets[m.petCursor].ID
			m.showDetail = true
			return m, m.runOp(func(ctx context.Context) error {
				return m.store.FetchPet(ctx, id)
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.Adopt):
		if m.petCursor < len(pets) {
			m.form = m.adoptionForm(pets[m.petCursor])
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		if m.snap.Auth.User.Role == api.RoleSeller || m.snap.Auth.User.IsAdmin() {
			m.form = m.newPetForm()
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if m.petCursor < len(pets) {
			pet := pets[m.petCursor]
			if pet.SellerID == m.snap.Auth.User.ID || m.snap.Auth.User.IsAdmin() {
				m.form = m.editPetForm(pet)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		if m.petCursor < len(pets) {
			pet := pets[m.petCursor]
			owns := pet.SellerID == m.snap.Auth.User.ID
			if owns || m.snap.Auth.User.IsAdmin() {
				id := pet.ID
				return m, m.runOp(func(ctx context.Context) error {
					return m.store.DeletePet(ctx, id)
				})
			}
		}
		return m, nil
	}

	m.petCursor = m.moveIndex(m.petCursor, msg, len(pets))
	return m, nil
}

func (m Model) adoptionForm(pet api.Pet) *form {
	store := m.store
	ctx := m.ctx
	id := pet.ID
	return newForm(
		fmt.Sprintf("Apply to adopt %s", pet.Name),
		func(values []string) tea.Cmd {
			message := values[0]
			return func() tea.Msg {
				_ = store.ApplyForAdoption(ctx, id, message)
				return opDoneMsg{}
			}
		},
		formField{label: "Message to the shelter", placeholder: "tell them about your home"},
	)
}

func (m Model) newPetForm() *form {
	store := m.store
	ctx := m.ctx
	return newForm(
		"List a pet for adoption",
		func(values []string) tea.Cmd {
			age, _ := strconv.Atoi(values[3])
			fee, _ := strconv.ParseFloat(values[6], 64)
			input := api.PetInput{
				Name:        values[0],
				Species:     values[1],
				Breed:       values[2],
				Age:         age,
				Gender:      values[4],
				Description: values[5],
				AdoptionFee: fee,
			}
			if input.Name == "" || input.Species == "" {
				return nil
			}
			return func() tea.Msg {
				_ = store.CreatePet(ctx, input)
				return opDoneMsg{}
			}
		},
		formField{label: "Name"},
		formField{label: "Species", placeholder: "dog, cat, rabbit…"},
		formField{label: "Breed"},
		formField{label: "Age (years)", placeholder: "2"},
		formField{label: "Gender", placeholder: "male/female"},
		formField{label: "Description"},
		formField{label: "Adoption fee", placeholder: "120.00"},
	)
}

func (m Model) editPetForm(pet api.Pet) *form {
	store := m.store
	ctx := m.ctx
	id := pet.ID
	return newForm(
		fmt.Sprintf("Edit listing for %s", pet.Name),
		func(values []string) tea.Cmd {
			age, _ := strconv.Atoi(values[3])
			fee, _ := strconv.ParseFloat(values[6], 64)
			input := api.PetInput{
				Name:        values[0],
				Species:     values[1],
				Breed:       values[2],
				Age:         age,
				Gender:      values[4],
				Description: values[5],
				AdoptionFee: fee,
			}
			if input.Name == "" || input.Species == "" {
				return nil
			}
			return func() tea.Msg {
				_ = store.UpdatePet(ctx, id, input)
				return opDoneMsg{}
			}
		},
		formField{label: "Name", initial: pet.Name},
		formField{label: "Species", initial: pet.Species},
		formField{label: "Breed", initial: pet.Breed},
		formField{label: "Age (years)", initial: strconv.Itoa(pet.Age)},
		formField{label: "Gender", initial: pet.Gender},
		formField{label: "Description", initial: pet.Description},
		formField{label: "Adoption fee", initial: strconv.FormatFloat(pet.AdoptionFee, 'f', 2, 64)},
	)
}

func (m Model) renderPets() string {
	pets := m.snap.Pets.Pets
	var b strings.Builder

	if m.showDetail && m.snap.Pets.Current != nil {
		return m.renderPetDetail(*m.snap.Pets.Current)
	}

	if len(pets) == 0 {
		b.WriteString(m.styles.MutedText.Render("no pets listed right now"))
		return b.String()
	}

	for i, pet := range pets {
		line := fmt.Sprintf(" %-18s %-10s %-14s %8s  ",
			truncate(pet.Name, 18),
			truncate(pet.Species, 10),
			truncate(pet.Breed, 14),
			formatMoney(pet.AdoptionFee))
		if i == m.petCursor {
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString(m.styles.Text.Render(line))
		}
		b.WriteString(m.styles.StatusStyle(pet.Status).Render(pet.Status))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderPetDetail(pet api.Pet) string {
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render(pet.Name))
	b.WriteString("  ")
	b.WriteString(m.styles.StatusStyle(pet.Status).Render(pet.Status))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Text.Render(fmt.Sprintf("%s · %s · %s · %s old",
		pet.Species, pet.Breed, pet.Gender, plural(pet.Age, "year"))))
	b.WriteString("\n")
	b.WriteString(m.styles.Text.Render("Adoption fee: " + formatMoney(pet.AdoptionFee)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.MutedText.Render(pet.Description))
	b.WriteString("\n\n")
	b.WriteString(m.styles.FaintText.Render("A apply for adoption · esc back"))
	return b.String()
}
