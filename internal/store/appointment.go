package store

import (
	"context"

	"clinic-management-api/internal/model"
)

// CreateAppointment inserts unconditionally. patient_id and doctor_id are not
// checked against their tables and nothing prevents two bookings in the same
// slot; both are accepted limitations of the data model.
func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO appointments (patient_id, doctor_id, date, time)
		 VALUES ($1,$2,$3,$4)
		 RETURNING id`,
		a.PatientID, a.DoctorID, a.Date, a.Time,
	).Scan(&a.ID)
}

// AppointmentsByPatientEmail is the patient view: that patient's bookings
// with the doctor's name resolved, newest first.
func (s *Store) AppointmentsByPatientEmail(ctx context.Context, email string) ([]model.PatientAppointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT a.id, d.name, a.date, a.time
		 FROM appointments a
		 JOIN patients p ON a.patient_id = p.id
		 JOIN doctors d ON a.doctor_id = d.id
		 WHERE p.email = $1
		 ORDER BY a.date DESC, a.time DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.PatientAppointment{}
	for rows.Next() {
		var v model.PatientAppointment
		if err := rows.Scan(&v.ID, &v.Doctor, &v.Date, &v.Time); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// AppointmentsByDoctorName is the doctor view: that doctor's schedule with
// patient demographics attached. Filtering is by display name, so two
// doctors sharing a name see each other's rows; doctor identity stays
// id-based everywhere else.
func (s *Store) AppointmentsByDoctorName(ctx context.Context, name string) ([]model.DoctorAppointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT a.id, p.id, p.name, p.age, p.gender, p.height, p.weight, a.date, a.time
		 FROM appointments a
		 JOIN patients p ON a.patient_id = p.id
		 JOIN doctors d ON a.doctor_id = d.id
		 WHERE d.name = $1
		 ORDER BY a.date DESC, a.time DESC`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.DoctorAppointment{}
	for rows.Next() {
		var v model.DoctorAppointment
		if err := rows.Scan(&v.ID, &v.PatientID, &v.Patient, &v.Age, &v.Gender, &v.Height, &v.Weight, &v.Date, &v.Time); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// AllAppointments is the admin view: every booking with both display names
// resolved.
func (s *Store) AllAppointments(ctx context.Context) ([]model.AdminAppointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT a.id, p.name, d.name, a.date, a.time
		 FROM appointments a
		 JOIN patients p ON a.patient_id = p.id
		 JOIN doctors d ON a.doctor_id = d.id
		 ORDER BY a.date DESC, a.time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.AdminAppointment{}
	for rows.Next() {
		var v model.AdminAppointment
		if err := rows.Scan(&v.ID, &v.Patient, &v.Doctor, &v.Date, &v.Time); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
