package api

import (
	"context"
	"net/http"
)

// AppointmentInput carries the booking fields.
type AppointmentInput struct {
	PetName string `json:"petName"`
	VetID   string `json:"vetId"`
	Date    string `json:"date"`
	Slot    string `json:"slot"`
	Reason  string `json:"reason"`
}

// BookAppointment requests a veterinary appointment.
func (c *Client) BookAppointment(ctx context.Context, input AppointmentInput) (Appointment, error) {
	raw, err := c.gw.Send(ctx, http.MethodPost, "/api/appointments", input)
	if err != nil {
		return Appointment{}, err
	}
	return UnwrapValue[Appointment](raw, "appointment"), nil
}

// FetchMyAppointments lists the caller's bookings.
func (c *Client) FetchMyAppointments(ctx context.Context) ([]Appointment, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/api/appointments/my", nil)
	if err != nil {
		return nil, err
	}
	return UnwrapList[Appointment](raw, "appointments"), nil
}

// FetchVetSchedule lists the appointments assigned to the calling vet.
func (c *Client) FetchVetSchedule(ctx context.Context) ([]Appointment, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/api/appointments/vet", nil)
	if err != nil {
		return nil, err
	}
	return UnwrapList[Appointment](raw, "appointments"), nil
}

// UpdateAppointmentStatus transitions a booking (vet only).
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id, status, notes string) (Appointment, error) {
	raw, err := c.gw.Send(ctx, http.MethodPatch, "/api/appointments/"+id+"/status", map[string]string{
		"status": status,
		"notes":  notes,
	})
	if err != nil {
		return Appointment{}, err
	}
	return UnwrapValue[Appointment](raw, "appointment"), nil
}

// CancelAppointment cancels a booking the caller owns.
func (c *Client) CancelAppointment(ctx context.Context, id string) (Appointment, error) {
	raw, err := c.gw.Send(ctx, http.MethodPatch, "/api/appointments/"+id+"/cancel", nil)
	if err != nil {
		return Appointment{}, err
	}
	return UnwrapValue[Appointment](raw, "appointment"), nil
}
