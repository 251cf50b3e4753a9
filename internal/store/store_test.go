package store

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"clinic-management-api/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	_ = godotenv.Load("../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(pool.Close)

	s := New(pool)
	if err := s.Migrate(context.Background(), "../../db/migrations/001_init.sql"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return s
}

func TestSeedIdempotent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := s.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var doctors, credentials int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&doctors); err != nil {
		t.Fatalf("count doctors: %v", err)
	}
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&credentials); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if doctors != len(seedDoctors) {
		t.Errorf("expected %d doctors, got %d", len(seedDoctors), doctors)
	}
	// one credential per doctor plus the admin
	if credentials != len(seedDoctors)+1 {
		t.Errorf("expected %d credentials, got %d", len(seedDoctors)+1, credentials)
	}
}

func TestCreatePatientDuplicate(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	email := fmt.Sprintf("dup-%s@test.com", uuid.New().String()[:8])
	first := &model.Patient{Name: "First", Email: email, Age: 20}
	if err := s.CreatePatient(ctx, first); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected assigned id")
	}

	second := &model.Patient{Name: "Second", Email: email, Age: 21}
	if err := s.CreatePatient(ctx, second); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestPrescriptionLifecycle(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	// ephemeral init wipes history
	if err := s.InitPrescriptions(ctx, true); err != nil {
		t.Fatalf("init: %v", err)
	}

	age := 52
	p := &model.Prescription{
		DoctorName: "Dr. James Davis", PatientName: "Someone",
		Age: &age, Medicines: "Tamoxifen 20mg",
	}
	if err := s.CreatePrescription(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == 0 || p.CreatedAt.IsZero() {
		t.Error("expected store-assigned id and timestamp")
	}

	// persistent init keeps rows
	if err := s.InitPrescriptions(ctx, false); err != nil {
		t.Fatalf("reinit: %v", err)
	}
	kept, err := s.ListPrescriptions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(kept) != 1 {
		t.Fatalf("expected 1 prescription after persistent init, got %d", len(kept))
	}
	if kept[0].Age == nil || *kept[0].Age != 52 {
		t.Error("age snapshot lost")
	}
	if kept[0].Height != nil || kept[0].Weight != nil {
		t.Error("omitted fields should be null")
	}

	// ephemeral init drops them
	if err := s.InitPrescriptions(ctx, true); err != nil {
		t.Fatalf("ephemeral reinit: %v", err)
	}
	cleared, err := s.ListPrescriptions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cleared) != 0 {
		t.Errorf("expected empty table after ephemeral init, got %d rows", len(cleared))
	}
}
