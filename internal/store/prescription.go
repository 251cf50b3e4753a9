package store

import (
	"context"
	"fmt"

	"clinic-management-api/internal/model"
)

const createPrescriptions = `
CREATE TABLE IF NOT EXISTS prescriptions (
    id BIGSERIAL PRIMARY KEY,
    doctor_name TEXT NOT NULL,
    patient_name TEXT NOT NULL,
    age INT,
    height DOUBLE PRECISION,
    weight DOUBLE PRECISION,
    medicines TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// InitPrescriptions sets up the prescriptions table. With ephemeral=true the
// table is dropped first, so prescription history does not survive a restart.
// That reproduces the legacy system's behavior; callers opt out of it via
// configuration.
func (s *Store) InitPrescriptions(ctx context.Context, ephemeral bool) error {
	if ephemeral {
		if _, err := s.pool.Exec(ctx, `DROP TABLE IF EXISTS prescriptions`); err != nil {
			return fmt.Errorf("drop prescriptions: %w", err)
		}
	}
	if _, err := s.pool.Exec(ctx, createPrescriptions); err != nil {
		return fmt.Errorf("create prescriptions: %w", err)
	}
	return nil
}

func (s *Store) CreatePrescription(ctx context.Context, p *model.Prescription) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO prescriptions (doctor_name, patient_name, age, height, weight, medicines)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING id, created_at`,
		p.DoctorName, p.PatientName, p.Age, p.Height, p.Weight, p.Medicines,
	).Scan(&p.ID, &p.CreatedAt)
}

func (s *Store) ListPrescriptions(ctx context.Context) ([]model.Prescription, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, doctor_name, patient_name, age, height, weight, medicines, created_at
		 FROM prescriptions
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Prescription{}
	for rows.Next() {
		var p model.Prescription
		if err := rows.Scan(&p.ID, &p.DoctorName, &p.PatientName, &p.Age, &p.Height, &p.Weight, &p.Medicines, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
