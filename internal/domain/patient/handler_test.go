package patient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nutriplan/nutriplan/internal/domain/diet"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	return h, echo.New()
}

func seedPatient(t *testing.T, h *Handler) *Patient {
	t.Helper()
	p := &Patient{Nome: "Mario", Cognome: "Rossi", Eta: iptr(42)}
	if err := h.svc.Create(context.Background(), p); err != nil { t.Fatalf("seed: %v", err) }
	return p
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler()
	body := `{"nome":"Mario","cognome":"Rossi","eta":42}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Create(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusCreated { t.Errorf("expected 201, got %d", rec.Code) }
	if !strings.Contains(rec.Body.String(), `"dieta"`) { t.Error("expected dieta in response") }
}

func TestHandler_Create_MissingCognome(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":"Mario"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Create(c); err == nil { t.Error("expected error") }
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id"); c.SetParamValues(uuid.New().String())
	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound { t.Errorf("expected 404, got %v", err) }
}

func TestHandler_Update_NoFields(t *testing.T) {
	h, e := newTestHandler()
	p := seedPatient(t, h)
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id"); c.SetParamValues(p.ID.String())
	err := h.Update(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest { t.Errorf("expected 400, got %v", err) }
}

func TestHandler_Delete(t *testing.T) {
	h, e := newTestHandler()
	p := seedPatient(t, h)
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id"); c.SetParamValues(p.ID.String())
	if err := h.Delete(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusNoContent { t.Errorf("expected 204, got %d", rec.Code) }
}

func TestHandler_GetDiet(t *testing.T) {
	h, e := newTestHandler()
	p := seedPatient(t, h)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id"); c.SetParamValues(p.ID.String())
	if err := h.GetDiet(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if !strings.Contains(rec.Body.String(), `"totale_kcal":0`) { t.Errorf("unexpected body: %s", rec.Body.String()) }
}

func TestHandler_ReplaceDiet(t *testing.T) {
	h, e := newTestHandler()
	p := seedPatient(t, h)
	body := `{"pranzo":{"alimenti":[{"nome":"Pasta","quantita":80,"unita":"g","kcal":280}]}}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id"); c.SetParamValues(p.ID.String())
	if err := h.ReplaceDiet(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if !strings.Contains(rec.Body.String(), `"totale_kcal":280`) { t.Errorf("totals not recomputed: %s", rec.Body.String()) }
}

func TestHandler_AppendFood(t *testing.T) {
	h, e := newTestHandler()
	p := seedPatient(t, h)
	body := `{"nome":"Latte","quantita":200,"unita":"ml","kcal":92}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "meal"); c.SetParamValues(p.ID.String(), diet.MealColazione)
	if err := h.AppendFood(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if !strings.Contains(rec.Body.String(), `"totale_kcal":92`) { t.Errorf("totals not recomputed: %s", rec.Body.String()) }
}

func TestHandler_AppendFood_InvalidMeal(t *testing.T) {
	h, e := newTestHandler()
	p := seedPatient(t, h)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":"Latte"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "meal"); c.SetParamValues(p.ID.String(), "brunch")
	err := h.AppendFood(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest { t.Errorf("expected 400, got %v", err) }
}

func TestHandler_ExportDiet(t *testing.T) {
	h, e := newTestHandler()
	p := seedPatient(t, h)
	h.svc.AppendFood(context.Background(), p.ID, diet.MealPranzo, diet.FoodItem{Nome: "Pasta", Quantita: 80, Unita: "g", Kcal: 280})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id"); c.SetParamValues(p.ID.String())
	if err := h.ExportDiet(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusOK { t.Errorf("expected 200, got %d", rec.Code) }
	cd := rec.Header().Get(echo.HeaderContentDisposition)
	if cd != `attachment; filename="piano_Rossi_Mario.doc"` { t.Errorf("content disposition = %q", cd) }
	if !strings.Contains(rec.Body.String(), "Piano Nutrizionale") { t.Error("expected composed document body") }
}

func TestHandler_ListDiets(t *testing.T) {
	h, e := newTestHandler()
	seedPatient(t, h)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.ListDiets(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if !strings.Contains(rec.Body.String(), `"total":1`) { t.Errorf("unexpected body: %s", rec.Body.String()) }
}
