package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clinic-management-api/internal/model"
)

type savePrescriptionRequest struct {
	DoctorName  string   `json:"doctorName"`
	PatientName string   `json:"patientName"`
	Age         *int     `json:"age"`
	Height      *float64 `json:"height"`
	Weight      *float64 `json:"weight"`
	Medicines   string   `json:"medicines"`
}

func (h *Handler) SavePrescription(c echo.Context) error {
	var req savePrescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if req.DoctorName == "" || req.PatientName == "" || req.Medicines == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "doctorName, patientName and medicines required")
	}

	// age/height/weight stay nil when omitted and are stored as NULL
	p := &model.Prescription{
		DoctorName:  req.DoctorName,
		PatientName: req.PatientName,
		Age:         req.Age,
		Height:      req.Height,
		Weight:      req.Weight,
		Medicines:   req.Medicines,
	}
	if err := h.store.CreatePrescription(c.Request().Context(), p); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "saved"})
}

func (h *Handler) ListPrescriptions(c echo.Context) error {
	prescriptions, err := h.store.ListPrescriptions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prescriptions)
}
