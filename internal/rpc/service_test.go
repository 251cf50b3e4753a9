package rpc

import (
	"context"
	"fmt"
	"net"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"clinic-management-api/internal/middleware"
	"clinic-management-api/internal/model"
	"clinic-management-api/internal/store"
)

func testService(t *testing.T) (*Service, *store.Store) {
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

	st := store.New(pool)
	if err := st.Migrate(context.Background(), "../../db/migrations/001_init.sql"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := st.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewService(st, zerolog.Nop()), st
}

func TestAuthenticateSeededCredentials(t *testing.T) {
	svc, _ := testService(t)

	resp, err := svc.Authenticate(context.Background(), &AuthRequest{
		Username: "svanam", Password: "admin@2110",
	})
	if err != nil {
		t.Fatalf("authenticate admin: %v", err)
	}
	if resp.Status != "success" || resp.Role != model.RoleAdmin {
		t.Errorf("unexpected response: %+v", resp)
	}

	resp, err = svc.Authenticate(context.Background(), &AuthRequest{
		Username: "emma@gmail.com", Password: "svmhospital123",
	})
	if err != nil {
		t.Fatalf("authenticate doctor: %v", err)
	}
	if resp.Role != model.RoleDoctor || resp.Username != "emma@gmail.com" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestAuthenticateRejections(t *testing.T) {
	svc, _ := testService(t)

	tests := []struct {
		name string
		req  *AuthRequest
		code codes.Code
	}{
		{"wrong password", &AuthRequest{Username: "svanam", Password: "nope"}, codes.Unauthenticated},
		{"unknown user", &AuthRequest{Username: "ghost", Password: "admin@2110"}, codes.Unauthenticated},
		{"missing password", &AuthRequest{Username: "svanam"}, codes.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), tt.req)
			if err == nil {
				t.Fatal("expected error")
			}
			s, _ := status.FromError(err)
			if s.Code() != tt.code {
				t.Errorf("expected %v, got %v", tt.code, s.Code())
			}
		})
	}
}

// Full round trip: client → raw codec → server handler → protowire and back,
// over an in-memory connection.
func TestClientOverBufconn(t *testing.T) {
	_, st := testService(t)

	lis := bufconn.Listen(1 << 20)
	srv := NewServer(st, zerolog.Nop(), middleware.NewRateLimiter(1000, 1000))
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	c, err := Dial("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { c.Close() })

	resp, err := c.Authenticate(context.Background(), &AuthRequest{
		Username: "svanam", Password: "admin@2110",
	})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if resp.Status != "success" || resp.Role != model.RoleAdmin || resp.Username != "svanam" {
		t.Errorf("unexpected response: %+v", resp)
	}

	_, err = c.Authenticate(context.Background(), &AuthRequest{
		Username: "svanam", Password: "wrong",
	})
	if s, _ := status.FromError(err); s.Code() != codes.Unauthenticated {
		t.Errorf("expected Unauthenticated over the wire, got %v", err)
	}

	// admin view is reachable through the client as well
	if _, err := c.ListAppointments(context.Background(), &ListAppointmentsRequest{}); err != nil {
		t.Errorf("list appointments: %v", err)
	}
}

func TestListAppointmentsViews(t *testing.T) {
	svc, st := testService(t)
	ctx := context.Background()

	p := &model.Patient{
		Name:  "RPC Patient",
		Email: fmt.Sprintf("rpc-%s@test.com", uuid.New().String()[:8]),
		Age:   47, Gender: "male", Height: 178, Weight: 80,
	}
	if err := st.CreatePatient(ctx, p); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	a := &model.Appointment{PatientID: p.ID, DoctorID: 4, Date: "2026-10-02", Time: "11:45"}
	if err := st.CreateAppointment(ctx, a); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	// patient view
	resp, err := svc.ListAppointments(ctx, &ListAppointmentsRequest{Email: p.Email})
	if err != nil {
		t.Fatalf("patient view: %v", err)
	}
	if len(resp.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(resp.Rows))
	}
	if resp.Rows[0].Doctor != "Dr. Olivia Johnson" || resp.Rows[0].Date != "2026-10-02" {
		t.Errorf("unexpected row: %+v", resp.Rows[0])
	}

	// doctor view carries demographics
	resp, err = svc.ListAppointments(ctx, &ListAppointmentsRequest{Doctor: "Dr. Olivia Johnson"})
	if err != nil {
		t.Fatalf("doctor view: %v", err)
	}
	found := false
	for _, r := range resp.Rows {
		if r.PatientID == p.ID {
			found = true
			if r.Age != int64(p.Age) || r.Gender != p.Gender {
				t.Errorf("demographics mismatch: %+v", r)
			}
		}
	}
	if !found {
		t.Error("appointment missing from doctor view")
	}

	// admin view resolves both names
	resp, err = svc.ListAppointments(ctx, &ListAppointmentsRequest{})
	if err != nil {
		t.Fatalf("admin view: %v", err)
	}
	found = false
	for _, r := range resp.Rows {
		if r.Patient == p.Name && r.Doctor == "Dr. Olivia Johnson" && r.Time == "11:45" {
			found = true
		}
	}
	if !found {
		t.Error("appointment missing from admin view")
	}
}
