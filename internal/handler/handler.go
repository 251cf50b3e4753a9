package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"clinic-management-api/internal/store"
)

type Handler struct {
	store *store.Store
	log   zerolog.Logger
}

func New(st *store.Store, log zerolog.Logger) *Handler {
	return &Handler{store: st, log: log}
}

// Register wires the routes. loginLimit is applied to the login route only;
// everything else is unthrottled.
func (h *Handler) Register(e *echo.Echo, loginLimit echo.MiddlewareFunc) {
	e.POST("/patients", h.AddPatient)
	e.GET("/patients", h.ListPatients)
	e.POST("/appointments", h.BookAppointment)
	e.GET("/appointments", h.ListAppointments)
	e.POST("/prescriptions", h.SavePrescription)
	e.GET("/prescriptions", h.ListPrescriptions)
	e.POST("/login", h.Login, loginLimit)
}
