package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"clinic-management-api/internal/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login is a single credential check returning a role. There is no token or
// session; the response is the same generic rejection whether the username
// is unknown or the password is wrong.
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password required")
	}

	cred, err := h.store.CredentialByUsername(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid login"})
		}
		return err
	}
	if !auth.CheckPassword(cred.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid login"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":   "success",
		"role":     cred.Role,
		"username": cred.Username,
	})
}
