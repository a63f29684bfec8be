package cycle

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/cycles", h.ListByYear)
	api.GET("/cycles/effective", h.EffectiveRange)
	api.POST("/cycles", h.Upsert)
	api.POST("/cycles/bulk", h.BulkUpsert)
	api.POST("/cycles/generate", h.Generate)
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseYearMonth(c echo.Context) (int, int, error) {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid year")
	}
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid month")
	}
	return year, month, nil
}

func (h *Handler) ListByYear(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
	}
	items, err := h.svc.ListByYear(c.Request().Context(), year)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Cycle{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) EffectiveRange(c echo.Context) error {
	year, month, err := parseYearMonth(c)
	if err != nil {
		return err
	}
	rng, err := h.svc.EffectiveRange(c.Request().Context(), year, month)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rng)
}

type upsertRequest struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (req *upsertRequest) toCycle() (*Cycle, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	return &Cycle{Year: req.Year, Month: req.Month, StartDate: start, EndDate: end}, nil
}

func (h *Handler) Upsert(c echo.Context) error {
	var req upsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cyc, err := req.toCycle()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "dates must be YYYY-MM-DD")
	}
	if err := h.svc.Upsert(c.Request().Context(), cyc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, cyc)
}

func (h *Handler) BulkUpsert(c echo.Context) error {
	var reqs []upsertRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cycles := make([]*Cycle, 0, len(reqs))
	for _, req := range reqs {
		cyc, err := req.toCycle()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "dates must be YYYY-MM-DD")
		}
		cycles = append(cycles, cyc)
	}
	if err := h.svc.BulkUpsert(c.Request().Context(), cycles); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, cycles)
}

type generateRequest struct {
	Year    int `json:"year"`
	Configs []struct {
		Month   int    `json:"month"`
		EndDate string `json:"end_date"`
	} `json:"configs"`
}

func (h *Handler) Generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	configs := make([]MonthEndConfig, 0, len(req.Configs))
	for _, cfg := range req.Configs {
		end, err := parseDate(cfg.EndDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "dates must be YYYY-MM-DD")
		}
		configs = append(configs, MonthEndConfig{Month: cfg.Month, EndDate: end})
	}
	cycles, err := h.svc.GenerateYearCycles(c.Request().Context(), req.Year, configs)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, cycles)
}
