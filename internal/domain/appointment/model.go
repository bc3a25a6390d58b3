package appointment

import "time"

// Statuses an appointment can hold. Only active appointments (neither
// cancelled nor completed) block a slot.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// Doctor maps to the doctors table. Only verified doctors are bookable.
type Doctor struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Specialization string `db:"specialization" json:"specialization"`
	IsVerified     bool   `db:"is_verified" json:"is_verified"`
}

// Appointment maps to the appointments table. Date and time are kept as the
// validated wire strings (YYYY-MM-DD and HH:MM); the database columns are
// DATE and TIME.
type Appointment struct {
	ID              int64     `db:"id" json:"id"`
	PatientName     string    `db:"patient_name" json:"patient_name"`
	PatientEmail    string    `db:"patient_email" json:"patient_email"`
	PatientPhone    string    `db:"patient_phone" json:"patient_phone"`
	DoctorID        int64     `db:"doctor_id" json:"doctor_id"`
	AppointmentDate string    `db:"appointment_date" json:"appointment_date"`
	AppointmentTime string    `db:"appointment_time" json:"appointment_time"`
	Reason          string    `db:"reason" json:"reason"`
	Status          string    `db:"status" json:"status"`
	Notes           string    `db:"notes" json:"notes"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Record is an appointment joined with its doctor, as returned by List.
type Record struct {
	ID              int64     `json:"id"`
	PatientName     string    `json:"patient_name"`
	PatientEmail    string    `json:"patient_email"`
	PatientPhone    string    `json:"patient_phone"`
	DoctorID        int64     `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name"`
	Specialization  string    `json:"specialization"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

// BookRequest is the booking payload.
type BookRequest struct {
	PatientName     string `json:"patient_name"`
	PatientEmail    string `json:"patient_email"`
	PatientPhone    string `json:"patient_phone"`
	DoctorID        int64  `json:"doctor_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Reason          string `json:"reason"`
}

// Confirmation is returned after a successful booking.
type Confirmation struct {
	AppointmentID   int64
	DoctorName      string
	AppointmentDate string
	AppointmentTime string
}

// ListFilter restricts List results. A nil DoctorID means no doctor
// restriction; a set value filters even when it matches no doctor. An empty
// Status means no status restriction.
type ListFilter struct {
	DoctorID *int64
	Status   string
}
