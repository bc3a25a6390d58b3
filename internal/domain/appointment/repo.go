package appointment

import (
	"context"
	"errors"
)

var (
	// ErrDoctorNotFound means the doctor does not exist or is not verified.
	ErrDoctorNotFound = errors.New("doctor not found or not verified")
	// ErrSlotTaken means an active appointment already holds the slot.
	ErrSlotTaken = errors.New("time slot already booked")
	// ErrNotFound means the appointment id matched no row.
	ErrNotFound = errors.New("appointment not found")
)

// Repository is the storage gateway for appointments. Book runs the verified
// doctor lookup, the active-slot conflict check, and the insert inside a
// single transaction so a failure after the conflict check cannot leave a
// phantom booking.
type Repository interface {
	Book(ctx context.Context, a *Appointment) (*Doctor, error)
	List(ctx context.Context, filter ListFilter) ([]*Record, error)
	UpdateStatus(ctx context.Context, id int64, status, notes string) error
}
