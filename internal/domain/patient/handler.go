package patient

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/nutriplan/nutriplan/internal/document"
	"github.com/nutriplan/nutriplan/internal/domain/diet"
	"github.com/nutriplan/nutriplan/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients", h.List)
	api.POST("/patients", h.Create)
	// Static before param so echo does not read "diets" as an id.
	api.GET("/patients/diets", h.ListDiets)
	api.GET("/patients/:id", h.Get)
	api.PUT("/patients/:id", h.Update)
	api.DELETE("/patients/:id", h.Delete)

	api.GET("/patients/:id/diet", h.GetDiet)
	api.PUT("/patients/:id/diet", h.ReplaceDiet)
	api.POST("/patients/:id/diet/:meal/foods", h.AppendFood)
	api.GET("/patients/:id/diet/export", h.ExportDiet)
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func notFoundOr(err error, status int) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return echo.NewHTTPError(status, err.Error())
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), c.QueryParam("search"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Create(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return notFoundOr(err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var u Update
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.Update(c.Request().Context(), id, u)
	if err != nil {
		return notFoundOr(err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return notFoundOr(err, http.StatusInternalServerError)
	}
	return c.NoContent(http.StatusNoContent)
}

// dietSummary is the per-patient entry of the all-diets listing.
type dietSummary struct {
	ID      uuid.UUID `json:"id"`
	Nome    string    `json:"nome"`
	Cognome string    `json:"cognome"`
	Dieta   diet.Plan `json:"dieta"`
}

func (h *Handler) ListDiets(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), "", pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	summaries := make([]dietSummary, 0, len(items))
	for _, p := range items {
		summaries = append(summaries, dietSummary{ID: p.ID, Nome: p.Nome, Cognome: p.Cognome, Dieta: p.Dieta})
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(summaries, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetDiet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	plan, err := h.svc.GetDiet(c.Request().Context(), id)
	if err != nil {
		return notFoundOr(err, http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *Handler) ReplaceDiet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var plan diet.Plan
	if err := c.Bind(&plan); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.ReplaceDiet(c.Request().Context(), id, plan)
	if err != nil {
		return notFoundOr(err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) AppendFood(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var food diet.FoodItem
	if err := c.Bind(&food); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	plan, err := h.svc.AppendFood(c.Request().Context(), id, c.Param("meal"), food)
	if err != nil {
		return notFoundOr(err, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *Handler) ExportDiet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return notFoundOr(err, http.StatusInternalServerError)
	}

	subject := document.Subject{Nome: p.Nome, Cognome: p.Cognome}
	if p.Eta != nil {
		subject.Eta = *p.Eta
	}
	if p.Email != nil {
		subject.Email = *p.Email
	}
	if p.Telefono != nil {
		subject.Telefono = *p.Telefono
	}

	builder := document.NewHTMLBuilder()
	out, err := document.Render(document.Compose(subject, p.Dieta), builder)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	filename := exportFilename(p.Cognome, p.Nome)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Response().Header().Set("Pragma", "no-cache")
	return c.Blob(http.StatusOK, builder.ContentType(), out)
}

func exportFilename(cognome, nome string) string {
	clean := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.ReplaceAll(s, " ", "_")
		return strings.Map(func(r rune) rune {
			if r == '"' || r == '/' || r == '\\' {
				return -1
			}
			return r
		}, s)
	}
	return "piano_" + clean(cognome) + "_" + clean(nome) + ".doc"
}
