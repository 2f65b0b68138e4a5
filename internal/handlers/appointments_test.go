package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"barbershop-app-server/internal/config"
	"barbershop-app-server/internal/middleware"
	"barbershop-app-server/internal/models"
	"barbershop-app-server/internal/routes"
	"barbershop-app-server/internal/seed"

	"github.com/gin-gonic/gin"
)

type apiResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newDemoRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem, directory := seed.Memory()
	cfg := &config.Config{
		Calendar:           config.CalendarConfig{DayViewStartHour: 8, DayViewEndHour: 20},
		SaveTimeoutSeconds: 5,
	}

	router := gin.New()
	routes.SetupRoutes(router, routes.Deps{
		Cfg:          cfg,
		Appointments: mem,
		Staff:        mem,
		Directory:    directory,
		DemoUserID:   "1",
	})
	return router
}

// do issues a request as the given demo user. An empty user falls back to the
// default identity (the owner).
func do(t *testing.T, router *gin.Engine, method, path, user string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(middleware.DemoUserHeader, user)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, resp
}

func listAppointments(t *testing.T, router *gin.Engine, user string) []models.Appointment {
	t.Helper()
	w, resp := do(t, router, http.MethodGet, "/api/v1/appointments", user, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list as %q: status %d, body %s", user, w.Code, w.Body.String())
	}
	var appts []models.Appointment
	if err := json.Unmarshal(resp.Data, &appts); err != nil {
		t.Fatalf("decode appointments: %v", err)
	}
	return appts
}

func TestListAppointmentsByRole(t *testing.T) {
	router := newDemoRouter(t)

	if got := listAppointments(t, router, ""); len(got) != 3 {
		t.Fatalf("owner should see all 3 appointments, got %d", len(got))
	}

	john := listAppointments(t, router, "2")
	if len(john) != 2 {
		t.Fatalf("John should see 2 appointments, got %d", len(john))
	}
	for _, a := range john {
		if a.BarberID != "2" {
			t.Fatalf("John saw a foreign appointment: %+v", a)
		}
	}

	if got := listAppointments(t, router, "3"); len(got) != 1 || got[0].ID != "a2" {
		t.Fatalf("Jane should see only a2, got %+v", got)
	}
}

func TestUnknownDemoUserRejected(t *testing.T) {
	router := newDemoRouter(t)
	w, _ := do(t, router, http.MethodGet, "/api/v1/appointments", "99", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", w.Code)
	}
}

func TestCreateAppointment(t *testing.T) {
	router := newDemoRouter(t)

	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	w, resp := do(t, router, http.MethodPost, "/api/v1/appointments", "", map[string]interface{}{
		"title":      "Haircut - Pete",
		"start":      start,
		"end":        start.Add(time.Hour),
		"barberId":   "2",
		"clientName": "Pete",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.Appointment
	if err := json.Unmarshal(resp.Data, &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated ID")
	}
	if !created.End.Equal(start.Add(time.Hour)) {
		t.Fatalf("unexpected end time %v", created.End)
	}

	if got := listAppointments(t, router, ""); len(got) != 4 {
		t.Fatalf("expected 4 appointments after create, got %d", len(got))
	}
}

func TestCreateValidation(t *testing.T) {
	router := newDemoRouter(t)

	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	w, resp := do(t, router, http.MethodPost, "/api/v1/appointments", "", map[string]interface{}{
		"start":    start,
		"end":      start.Add(time.Hour),
		"barberId": "2",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if resp.Error != "Please fill in all required fields." {
		t.Fatalf("unexpected error message %q", resp.Error)
	}

	var fields map[string]string
	if err := json.Unmarshal(resp.Data, &fields); err != nil {
		t.Fatalf("decode field errors: %v", err)
	}
	if _, ok := fields["Title"]; !ok {
		t.Fatalf("expected a Title error, got %v", fields)
	}
	if _, ok := fields["ClientName"]; !ok {
		t.Fatalf("expected a ClientName error, got %v", fields)
	}

	if got := listAppointments(t, router, ""); len(got) != 3 {
		t.Fatalf("a rejected create must not persist, got %d appointments", len(got))
	}
}

func TestCreateRejectsEndBeforeStart(t *testing.T) {
	router := newDemoRouter(t)

	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	w, resp := do(t, router, http.MethodPost, "/api/v1/appointments", "", map[string]interface{}{
		"title":      "Haircut - Pete",
		"start":      start,
		"end":        start.Add(-time.Hour),
		"barberId":   "2",
		"clientName": "Pete",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var fields map[string]string
	if err := json.Unmarshal(resp.Data, &fields); err != nil {
		t.Fatalf("decode field errors: %v", err)
	}
	if _, ok := fields["End"]; !ok {
		t.Fatalf("expected an End error, got %v", fields)
	}
}

func TestBarberAssignmentForced(t *testing.T) {
	router := newDemoRouter(t)

	start := time.Date(2024, 6, 11, 14, 0, 0, 0, time.Local)
	w, resp := do(t, router, http.MethodPost, "/api/v1/appointments", "3", map[string]interface{}{
		"title":      "Haircut - Leo",
		"start":      start,
		"end":        start.Add(time.Hour),
		"barberId":   "2", // ignored: barbers book onto themselves
		"clientName": "Leo",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.Appointment
	if err := json.Unmarshal(resp.Data, &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.BarberID != "3" {
		t.Fatalf("barber assignment should be forced to the acting barber, got %q", created.BarberID)
	}
}

func TestUpdateKeepsIdentity(t *testing.T) {
	router := newDemoRouter(t)

	before := listAppointments(t, router, "")[0]
	if before.ID != "a1" {
		t.Fatalf("fixture order changed, got %q first", before.ID)
	}

	w, resp := do(t, router, http.MethodPut, "/api/v1/appointments/a1", "", map[string]interface{}{
		"title":      before.Title,
		"start":      before.Start,
		"end":        before.End,
		"barberId":   before.BarberID,
		"clientName": before.ClientName,
		"notes":      "Short fade, washed",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var saved models.Appointment
	if err := json.Unmarshal(resp.Data, &saved); err != nil {
		t.Fatalf("decode saved: %v", err)
	}
	if saved.ID != "a1" || saved.Notes != "Short fade, washed" {
		t.Fatalf("unexpected saved record %+v", saved)
	}
	if !saved.Start.Equal(before.Start) || !saved.End.Equal(before.End) {
		t.Fatalf("start/end must be unchanged, got %+v", saved)
	}

	after := listAppointments(t, router, "")
	if len(after) != 3 || after[0].ID != "a1" {
		t.Fatalf("edit must replace in place, got %+v", after)
	}
}

func TestBarberCannotTouchOthersAppointments(t *testing.T) {
	router := newDemoRouter(t)

	// a1 belongs to John (2); Jane (3) may neither edit nor delete it
	w, _ := do(t, router, http.MethodPut, "/api/v1/appointments/a1", "3", map[string]interface{}{
		"title":      "Hijacked",
		"start":      time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local),
		"end":        time.Date(2024, 6, 10, 11, 0, 0, 0, time.Local),
		"clientName": "Mike",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 on edit, got %d: %s", w.Code, w.Body.String())
	}

	w, _ = do(t, router, http.MethodDelete, "/api/v1/appointments/a1", "3", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 on delete, got %d: %s", w.Code, w.Body.String())
	}

	w, _ = do(t, router, http.MethodGet, "/api/v1/appointments/a1", "3", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 on fetch, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteAppointment(t *testing.T) {
	router := newDemoRouter(t)

	w, _ := do(t, router, http.MethodDelete, "/api/v1/appointments/a1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := listAppointments(t, router, ""); len(got) != 2 {
		t.Fatalf("expected 2 appointments after delete, got %d", len(got))
	}

	// Deleting an unknown ID is a silent no-op
	w, _ = do(t, router, http.MethodDelete, "/api/v1/appointments/nope", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown ID, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCalendarEvents(t *testing.T) {
	router := newDemoRouter(t)

	type calendarPayload struct {
		View   string    `json:"view"`
		From   time.Time `json:"from"`
		To     time.Time `json:"to"`
		Events []struct {
			ID    string `json:"id"`
			Color string `json:"color"`
		} `json:"events"`
	}

	w, resp := do(t, router, http.MethodGet, "/api/v1/appointments/calendar?view=day&anchor=2024-06-10", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var payload calendarPayload
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("decode calendar payload: %v", err)
	}
	if len(payload.Events) != 2 {
		t.Fatalf("owner should see both June 10th events, got %+v", payload.Events)
	}

	// John only sees his own, tinted with his roster color
	w, resp = do(t, router, http.MethodGet, "/api/v1/appointments/calendar?view=day&anchor=2024-06-10", "2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		t.Fatalf("decode calendar payload: %v", err)
	}
	if len(payload.Events) != 1 || payload.Events[0].ID != "a1" {
		t.Fatalf("John should see only a1, got %+v", payload.Events)
	}
	if payload.Events[0].Color != "#22c55e" {
		t.Fatalf("expected John's roster color, got %q", payload.Events[0].Color)
	}

	w, _ = do(t, router, http.MethodGet, "/api/v1/appointments/calendar?anchor=10-06-2024", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed anchor, got %d", w.Code)
	}
}

func TestListBarbers(t *testing.T) {
	router := newDemoRouter(t)

	w, resp := do(t, router, http.MethodGet, "/api/v1/barbers", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var barbers []models.UserSanitized
	if err := json.Unmarshal(resp.Data, &barbers); err != nil {
		t.Fatalf("decode barbers: %v", err)
	}
	if len(barbers) != 2 {
		t.Fatalf("owner should see both barbers, got %+v", barbers)
	}

	w, resp = do(t, router, http.MethodGet, "/api/v1/barbers", "2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(resp.Data, &barbers); err != nil {
		t.Fatalf("decode barbers: %v", err)
	}
	if len(barbers) != 1 || barbers[0].ID != "2" {
		t.Fatalf("a barber should only see themselves, got %+v", barbers)
	}
}

func TestSearchClients(t *testing.T) {
	router := newDemoRouter(t)

	w, resp := do(t, router, http.MethodGet, "/api/v1/clients?q=mar", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var results []models.Client
	if err := json.Unmarshal(resp.Data, &results); err != nil {
		t.Fatalf("decode clients: %v", err)
	}
	if len(results) != 1 || results[0].Name != "María García" {
		t.Fatalf("expected María García, got %+v", results)
	}

	// Empty query returns the bounded suggestion list
	w, resp = do(t, router, http.MethodGet, "/api/v1/clients", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(resp.Data, &results); err != nil {
		t.Fatalf("decode clients: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("expected the 5 seeded clients, got %d", len(results))
	}
}

func TestSelectClient(t *testing.T) {
	router := newDemoRouter(t)

	w, resp := do(t, router, http.MethodGet, "/api/v1/clients/c2/select", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var sel struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := json.Unmarshal(resp.Data, &sel); err != nil {
		t.Fatalf("decode selection: %v", err)
	}
	if sel.Name != "María García" {
		t.Fatalf("unexpected selection %+v", sel)
	}

	w, _ = do(t, router, http.MethodGet, "/api/v1/clients/nope/select", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown client, got %d", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newDemoRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
