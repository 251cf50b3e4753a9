package store

import (
	"context"

	"clinic-management-api/internal/model"
)

func (s *Store) CreatePatient(ctx context.Context, p *model.Patient) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO patients (name, email, age, gender, height, weight)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING id`,
		p.Name, p.Email, p.Age, p.Gender, p.Height, p.Weight,
	).Scan(&p.ID)
	if isUniqueViolation(err) {
		return ErrEmailExists
	}
	return err
}

func (s *Store) ListPatients(ctx context.Context) ([]model.Patient, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, age, gender, height, weight FROM patients`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Patient{}
	for rows.Next() {
		var p model.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Age, &p.Gender, &p.Height, &p.Weight); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
