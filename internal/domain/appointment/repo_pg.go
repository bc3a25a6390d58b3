package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates the PostgreSQL-backed appointment repository.
func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Book(ctx context.Context, a *Appointment) (*Doctor, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var d Doctor
	err = tx.QueryRow(ctx,
		`SELECT id, name, specialization, is_verified FROM doctors WHERE id = $1 AND is_verified = TRUE`,
		a.DoctorID,
	).Scan(&d.ID, &d.Name, &d.Specialization, &d.IsVerified)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("look up doctor: %w", err)
	}

	var conflictID int64
	err = tx.QueryRow(ctx, `
		SELECT id FROM appointments
		WHERE doctor_id = $1 AND appointment_date = $2 AND appointment_time = $3
		AND status NOT IN ('cancelled', 'completed')`,
		a.DoctorID, a.AppointmentDate, a.AppointmentTime,
	).Scan(&conflictID)
	if err == nil {
		return nil, ErrSlotTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("check slot conflict: %w", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO appointments
		(patient_name, patient_email, patient_phone, doctor_id, appointment_date, appointment_time, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, created_at, updated_at`,
		a.PatientName, a.PatientEmail, a.PatientPhone, a.DoctorID,
		a.AppointmentDate, a.AppointmentTime, a.Reason,
	).Scan(&a.ID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		// The unique partial index on active slots closes the race between
		// two concurrent bookings that both pass the conflict check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}
	return &d, nil
}

func (r *repoPG) List(ctx context.Context, filter ListFilter) ([]*Record, error) {
	query := `
		SELECT a.id, a.patient_name, a.patient_email, a.patient_phone,
			a.doctor_id, d.name, d.specialization,
			a.appointment_date::text, to_char(a.appointment_time, 'HH24:MI'),
			a.reason, a.status, a.notes, a.created_at
		FROM appointments a
		JOIN doctors d ON a.doctor_id = d.id
		WHERE 1=1`
	var args []interface{}
	idx := 1

	if filter.DoctorID != nil {
		query += fmt.Sprintf(` AND a.doctor_id = $%d`, idx)
		args = append(args, *filter.DoctorID)
		idx++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(` AND a.status = $%d`, idx)
		args = append(args, filter.Status)
		idx++
	}

	query += ` ORDER BY a.appointment_date DESC, a.appointment_time DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query appointments: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.PatientName, &rec.PatientEmail, &rec.PatientPhone,
			&rec.DoctorID, &rec.DoctorName, &rec.Specialization,
			&rec.AppointmentDate, &rec.AppointmentTime,
			&rec.Reason, &rec.Status, &rec.Notes, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}

	return records, nil
}

func (r *repoPG) UpdateStatus(ctx context.Context, id int64, status, notes string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var updatedID int64
	err = tx.QueryRow(ctx, `
		UPDATE appointments
		SET status = $1, notes = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id`,
		status, notes, id,
	).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}

	return tx.Commit(ctx)
}
