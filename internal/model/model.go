package model

import "time"

const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
)

// Doctor rows are created once at seed time and never mutated.
type Doctor struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type Patient struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// Appointment joins a patient and a doctor by id. date is YYYY-MM-DD and
// time is 24h HH:MM, so descending text order is descending chronological
// order.
type Appointment struct {
	ID        int64  `json:"id"`
	PatientID int64  `json:"patient_id"`
	DoctorID  int64  `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// Prescription is a denormalized snapshot: it records doctor and patient by
// display name rather than id, so rows survive later identity changes but
// carry no referential integrity.
type Prescription struct {
	ID          int64     `json:"id"`
	DoctorName  string    `json:"doctor_name"`
	PatientName string    `json:"patient_name"`
	Age         *int      `json:"age"`
	Height      *float64  `json:"height"`
	Weight      *float64  `json:"weight"`
	Medicines   string    `json:"medicines"`
	CreatedAt   time.Time `json:"created_at"`
}

// Credential is a login row. The secret is stored as a bcrypt hash and is
// never serialized.
type Credential struct {
	ID           int64
	Role         string
	Username     string
	PasswordHash string
}

// Role-scoped views over the appointments table. All three are ordered by
// (date DESC, time DESC).

// PatientAppointment is what a patient sees: their own bookings with the
// doctor's display name resolved.
type PatientAppointment struct {
	ID     int64  `json:"id"`
	Doctor string `json:"doctor"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// DoctorAppointment is what a doctor sees: their schedule with the patient's
// demographics attached.
type DoctorAppointment struct {
	ID        int64   `json:"id"`
	PatientID int64   `json:"patient_id"`
	Patient   string  `json:"patient"`
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
}

// AdminAppointment is the unfiltered view with both display names resolved.
type AdminAppointment struct {
	ID      int64  `json:"id"`
	Patient string `json:"patient"`
	Doctor  string `json:"doctor"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}
