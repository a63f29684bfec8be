package report

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/reports/monthly", h.Monthly)
	api.GET("/reports/detailed", h.Detailed)
}

func (h *Handler) Monthly(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
	}
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid month")
	}
	r, err := h.svc.Monthly(c.Request().Context(), year, month)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, r)
}

func optionalInt(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return &n, nil
}

func (h *Handler) Detailed(c echo.Context) error {
	var f DetailedFilters
	var err error
	if f.Year, err = optionalInt(c, "year"); err != nil {
		return err
	}
	if f.Quarter, err = optionalInt(c, "quarter"); err != nil {
		return err
	}
	if f.AgeMin, err = optionalInt(c, "ageMin"); err != nil {
		return err
	}
	if f.AgeMax, err = optionalInt(c, "ageMax"); err != nil {
		return err
	}
	if gender := c.QueryParam("gender"); gender != "" {
		f.Gender = &gender
	}

	r, err := h.svc.Detailed(c.Request().Context(), f)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, r)
}
