package visit

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/visits", h.Create)
	api.GET("/visits/patient/:patientID", h.ListByPatient)
	api.GET("/visits/agenda", h.Agenda)
	api.GET("/visits/availability", h.Availability)
}

const dateLayout = "2006-01-02"

type createRequest struct {
	PatientID           string  `json:"patient_id"`
	Type                string  `json:"type"`
	Date                string  `json:"date"`
	NextAppointmentDate *string `json:"next_appointment_date"`
	NextAppointmentTime *string `json:"next_appointment_time"`
	Quantity            int     `json:"quantity"`
	Observations        *string `json:"observations"`
}

func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	v := &Visit{
		PatientID:           patientID,
		Type:                VisitType(req.Type),
		Date:                date,
		NextAppointmentTime: req.NextAppointmentTime,
		Quantity:            req.Quantity,
		Observations:        req.Observations,
	}
	if req.NextAppointmentDate != nil {
		next, err := time.Parse(dateLayout, *req.NextAppointmentDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "next_appointment_date must be YYYY-MM-DD")
		}
		v.NextAppointmentDate = &next
	}

	if err := h.svc.Create(c.Request().Context(), v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	items, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Visit{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Agenda(c echo.Context) error {
	from, err := time.Parse(dateLayout, c.QueryParam("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	to, err := time.Parse(dateLayout, c.QueryParam("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "to must be YYYY-MM-DD")
	}
	items, err := h.svc.Agenda(c.Request().Context(), from, to)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if items == nil {
		items = []*AgendaEntry{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Availability(c echo.Context) error {
	date, err := time.Parse(dateLayout, c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	slots, err := h.svc.Availability(c.Request().Context(), date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, slots)
}
