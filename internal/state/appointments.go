package state

import (
	"context"

	"github.com/pawhaven/pawdeck/internal/api"
)

// AppointmentsSlice caches the caller's bookings and, for veterinary
// accounts, the assigned schedule.
type AppointmentsSlice struct {
	Status   Status
	Mine     []api.Appointment
	Schedule []api.Appointment
}

func (a AppointmentsSlice) clone() AppointmentsSlice {
	a.Mine = cloneList(a.Mine)
	a.Schedule = cloneList(a.Schedule)
	return a
}

// applyAppointment replaces the booking by id in both lists.
func (a *AppointmentsSlice) applyAppointment(updated api.Appointment) {
	for i := range a.Mine {
		if a.Mine[i].ID == updated.ID {
			a.Mine[i] = updated
			break
		}
	}
	for i := range a.Schedule {
		if a.Schedule[i].ID == updated.ID {
			a.Schedule[i] = updated
			break
		}
	}
}

// BookAppointment requests a veterinary appointment.
func (s *Store) BookAppointment(ctx context.Context, input api.AppointmentInput) error {
	s.begin(SliceAppointments)
	appointment, err := s.api.BookAppointment(ctx, input)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.appointments.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.appointments.Mine = append(s.appointments.Mine, appointment)
	s.appointments.Status.succeed("appointment requested")
	return nil
}

// FetchMyAppointments refreshes the caller's bookings.
func (s *Store) FetchMyAppointments(ctx context.Context) error {
	s.begin(SliceAppointments)
	appointments, err := s.api.FetchMyAppointments(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.appointments.Status.fail("fetch appointments: " + api.ErrorMessage(err))
		return err
	}
	s.appointments.Mine = appointments
	s.appointments.Status.succeed("")
	return nil
}

// FetchVetSchedule refreshes the assigned schedule (veterinary only).
func (s *Store) FetchVetSchedule(ctx context.Context) error {
	s.begin(SliceAppointments)
	appointments, err := s.api.FetchVetSchedule(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.appointments.Status.fail("fetch schedule: " + api.ErrorMessage(err))
		return err
	}
	s.appointments.Schedule = appointments
	s.appointments.Status.succeed("")
	return nil
}

// UpdateAppointmentStatus transitions a booking (veterinary only).
func (s *Store) UpdateAppointmentStatus(ctx context.Context, id, status, notes string) error {
	s.begin(SliceAppointments)
	appointment, err := s.api.UpdateAppointmentStatus(ctx, id, status, notes)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.appointments.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.appointments.applyAppointment(appointment)
	s.appointments.Status.succeed("appointment updated")
	return nil
}

// CancelAppointment cancels a booking the caller owns.
func (s *Store) CancelAppointment(ctx context.Context, id string) error {
	s.begin(SliceAppointments)
	appointment, err := s.api.CancelAppointment(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.appointments.Status.fail(api.ErrorMessage(err))
		return err
	}
	s.appointments.applyAppointment(appointment)
	s.appointments.Status.succeed("appointment cancelled")
	return nil
}
