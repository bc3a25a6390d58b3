package appointment

import (
	"context"
	"fmt"
	"time"
)

// ValidationError carries the exact client-facing message for a rejected
// request. Handlers translate it to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Service struct {
	appointments Repository
	now          func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{appointments: repo, now: time.Now}
}

// Book validates the request and stores the appointment. Field checks fail
// fast in a fixed order before any storage work happens.
func (s *Service) Book(ctx context.Context, req *BookRequest) (*Confirmation, error) {
	for _, f := range []struct {
		name  string
		empty bool
	}{
		{"patient_name", req.PatientName == ""},
		{"patient_email", req.PatientEmail == ""},
		{"doctor_id", req.DoctorID == 0},
		{"appointment_date", req.AppointmentDate == ""},
		{"appointment_time", req.AppointmentTime == ""},
	} {
		if f.empty {
			return nil, &ValidationError{Message: fmt.Sprintf("%s is required", f.name)}
		}
	}

	date, err := time.ParseInLocation(dateLayout, req.AppointmentDate, time.Local)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid date or time format"}
	}
	clock, err := time.Parse(timeLayout, req.AppointmentTime)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid date or time format"}
	}

	when := time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.Local)
	if !when.After(s.now()) {
		return nil, &ValidationError{Message: "Appointment must be scheduled for a future date and time"}
	}

	appt := &Appointment{
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		PatientPhone:    req.PatientPhone,
		DoctorID:        req.DoctorID,
		AppointmentDate: date.Format(dateLayout),
		AppointmentTime: clock.Format(timeLayout),
		Reason:          req.Reason,
	}

	doctor, err := s.appointments.Book(ctx, appt)
	if err != nil {
		return nil, err
	}

	return &Confirmation{
		AppointmentID:   appt.ID,
		DoctorName:      doctor.Name,
		AppointmentDate: appt.AppointmentDate,
		AppointmentTime: appt.AppointmentTime,
	}, nil
}

// List returns appointments joined with doctor details, most recent slot
// first.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Record, error) {
	return s.appointments.List(ctx, filter)
}

// Update changes an appointment's status and notes.
func (s *Service) Update(ctx context.Context, id int64, status, notes string) error {
	if !validStatuses[status] {
		return &ValidationError{Message: "Invalid status"}
	}
	return s.appointments.UpdateStatus(ctx, id, status, notes)
}
