package store

import (
	"context"
	"fmt"

	"clinic-management-api/internal/auth"
	"clinic-management-api/internal/model"
)

type seedDoctor struct {
	name      string
	specialty string
	email     string
}

// Fixed roster carried over from the legacy system. The usernames and
// passwords are load-bearing: existing clients log in with them.
var seedDoctors = []seedDoctor{
	{"Dr. John Anderson", "Cardiology", "john@gmail.com"},
	{"Dr. Emma Wilson", "Neurology", "emma@gmail.com"},
	{"Dr. Michael Roberts", "Orthopedics", "michael@gmail.com"},
	{"Dr. Olivia Johnson", "Dermatology", "olivia@gmail.com"},
	{"Dr. William Smith", "Pediatrics", "william@gmail.com"},
	{"Dr. Sophia Brown", "Gynecology", "sophia@gmail.com"},
	{"Dr. James Davis", "Oncology", "james@gmail.com"},
	{"Dr. Isabella Martinez", "Psychiatry", "isabella@gmail.com"},
	{"Dr. Benjamin Lee", "Radiology", "benjamin@gmail.com"},
	{"Dr. Mia Taylor", "Gastroenterology", "mia@gmail.com"},
}

const (
	seedDoctorPassword = "svmhospital123"
	seedAdminUsername  = "svanam"
	seedAdminPassword  = "admin@2110"
)

// Seed populates the doctor roster, one credential per doctor, and the admin
// credential. It is a no-op whenever any doctors already exist, so it is
// idempotent per database rather than per process start.
func (s *Store) Seed(ctx context.Context) error {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&n); err != nil {
		return fmt.Errorf("count doctors: %w", err)
	}
	if n > 0 {
		return nil
	}

	doctorHash, err := auth.HashPassword(seedDoctorPassword)
	if err != nil {
		return err
	}
	adminHash, err := auth.HashPassword(seedAdminPassword)
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, d := range seedDoctors {
		if _, err := tx.Exec(ctx,
			`INSERT INTO doctors (name, specialty) VALUES ($1,$2)`,
			d.name, d.specialty,
		); err != nil {
			return fmt.Errorf("seed doctor %s: %w", d.name, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO users (role, username, password_hash) VALUES ($1,$2,$3)`,
			model.RoleDoctor, d.email, doctorHash,
		); err != nil {
			return fmt.Errorf("seed credential %s: %w", d.email, err)
		}
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO users (role, username, password_hash) VALUES ($1,$2,$3)`,
		model.RoleAdmin, seedAdminUsername, adminHash,
	); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	return tx.Commit(ctx)
}
