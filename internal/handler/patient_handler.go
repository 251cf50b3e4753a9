package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"clinic-management-api/internal/model"
	"clinic-management-api/internal/store"
)

type addPatientRequest struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

func (h *Handler) AddPatient(c echo.Context) error {
	var req addPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if req.Name == "" || req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and email required")
	}

	p := &model.Patient{
		Name:   req.Name,
		Email:  req.Email,
		Age:    req.Age,
		Gender: req.Gender,
		Height: req.Height,
		Weight: req.Weight,
	}
	if err := h.store.CreatePatient(c.Request().Context(), p); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			h.log.Debug().Str("email", req.Email).Msg("duplicate registration")
			return c.JSON(http.StatusConflict, map[string]string{"error": "Email exists"})
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "patient added"})
}

func (h *Handler) ListPatients(c echo.Context) error {
	patients, err := h.store.ListPatients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}
