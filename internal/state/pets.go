package state

import (
	"context"

	"github.com/pawhaven/pawdeck/internal/api"
)

// PetsSlice caches the adoption listings and the currently viewed pet.
type PetsSlice struct {
	Status  Status
	Pets    []api.Pet
	Current *api.Pet
}

func (p PetsSlice) clone() PetsSlice {
	p.Pets = cloneList(p.Pets)
	if p.Current != nil {
		current := *p.Current
		p.Current = &current
	}
	return p
}

// applyPet replaces the pet in every container that may hold it.
func (p *PetsSlice) applyPet(updated api.Pet) {
	for i := range p.Pets {
		if p.Pets[i].ID == updated.ID {
			p.Pets[i] = updated
			break
		}
	}
	if p.Current != nil && p.Current.ID == updated.ID {
		p.Current = &updated
	}
}

// FetchPets refreshes the adoption listings.
func (s *Store) FetchPets(ctx context.Context) error {
	s.begin(SlicePets)
	pets, err := s.api.FetchPets(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.pets.Status.fail("fetch pets: " + api.ErrorMessage(err))
		return err
	}
	s.pets.Pets = pets
	s.pets.Status.succeed("")
	return nil
}

// FetchPet loads one listing into Current.
func (s *Store) FetchPet(ctx context.Context, id string) error {
	s.begin(SlicePets)
	pet, err := s.api.FetchPet(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.pets.Status.fail("fetch pet: " + api.ErrorMessage(err))
		return err
	}
	s.pets.Current = &pet
	s.pets.applyPet(pet)
	s.pets.Status.succeed("")
	return nil
}

// ApplyForAdoption submits an adoption application for a pet.
func (s *Store) ApplyForAdoption(ctx context.Context, id, message string) error {
	s.begin(SlicePets)
	reply, err := s.api.ApplyForAdoption(ctx, id, message)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.pets.Status.fail(api.ErrorMessage(err))
		return err
	}
	if reply == "" {
		reply = "application submitted"
	}
	s.pets.Status.succeed(reply)
	return nil
}

// CreatePet lists a new pet (seller only) and adds it to the cached list.
func (s *Store) CreatePet(ctx context.Context, input api.PetInput) error {
	s.begin(SlicePets)
	pet, err := s.api.CreatePet(ctx, input)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.pets.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.pets.Pets = append(s.pets.Pets, pet)
	s.pets.Status.succeed("pet listed")
	return nil
}

// UpdatePet edits a listing in place.
func (s *Store) UpdatePet(ctx context.Context, id string, input api.PetInput) error {
	s.begin(SlicePets)
	pet, err := s.api.UpdatePet(ctx, id, input)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.pets.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.pets.applyPet(pet)
	s.pets.Status.succeed("pet updated")
	return nil
}

// DeletePet removes a listing from the server and the cached list.
func (s *Store) DeletePet(ctx context.Context, id string) error {
	s.begin(SlicePets)
	err := s.api.DeletePet(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.pets.Status.fail(api.ErrorMessage(err))
		return err
	}
	pets := s.pets.Pets[:0]
	for _, pet := range s.pets.Pets {
		if pet.ID != id {
			pets = append(pets, pet)
		}
	}
	s.pets.Pets = pets
	if s.pets.Current != nil && s.pets.Current.ID == id {
		s.pets.Current = nil
	}
	s.pets.Status.succeed("pet removed")
	return nil
}
