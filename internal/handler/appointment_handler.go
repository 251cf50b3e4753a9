package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"clinic-management-api/internal/model"
)

type bookAppointmentRequest struct {
	PatientID int64  `json:"patient_id"`
	DoctorID  int64  `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// Stored dates and times must be fixed-width sortable text, otherwise the
// DESC ordering of the list views stops being chronological.
func validSlot(date, tm string) bool {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return false
	}
	if _, err := time.Parse("15:04", tm); err != nil {
		return false
	}
	return true
}

// BookAppointment inserts without checking that the referenced patient or
// doctor exist and without any double-booking prevention, matching the
// legacy contract.
func (h *Handler) BookAppointment(c echo.Context) error {
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if req.PatientID == 0 || req.DoctorID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id and doctor_id required")
	}
	if !validSlot(req.Date, req.Time) {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD and time HH:MM")
	}

	a := &model.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
	}
	if err := h.store.CreateAppointment(c.Request().Context(), a); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "booked"})
}

// ListAppointments serves the three role-scoped views: ?email= for the
// patient view, ?doctor= for the doctor view, neither for the admin view.
// email wins when both are supplied.
func (h *Handler) ListAppointments(c echo.Context) error {
	ctx := c.Request().Context()

	if email := c.QueryParam("email"); email != "" {
		views, err := h.store.AppointmentsByPatientEmail(ctx, email)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, views)
	}

	if doctor := c.QueryParam("doctor"); doctor != "" {
		views, err := h.store.AppointmentsByDoctorName(ctx, doctor)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, views)
	}

	views, err := h.store.AllAppointments(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}
