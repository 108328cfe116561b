package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JUN1078/game-based-learning/models"
	"github.com/JUN1078/game-based-learning/services"

	"github.com/gin-gonic/gin"
)

type stubInBody struct{}

func (stubInBody) Latest(ctx context.Context, userID string) (*models.InBodyReport, error) {
	return nil, nil
}

type stubTraining struct{}

func (stubTraining) ListForDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.CorosUpload, error) {
	return nil, nil
}

type stubFood struct{}

func (stubFood) ListForDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.FoodLog, error) {
	return nil, nil
}

type stubUsers struct{}

func (stubUsers) ByID(ctx context.Context, userID string) (*models.User, error) {
	return nil, nil
}

// recordingTraining captures the window the pipeline queried with.
type recordingTraining struct {
	start, end time.Time
}

func (r *recordingTraining) ListForDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.CorosUpload, error) {
	r.start, r.end = start, end
	return nil, nil
}

func newEnergyTestRouter(training services.TrainingSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewEnergyService(stubInBody{}, training, stubFood{}, stubUsers{})
	ctl := NewEnergyController(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "u1") })
	r.GET("/daily/energy", ctl.Daily)
	r.GET("/weekly/summary", ctl.Weekly)
	return r
}

func TestDailyEnergyEndpoint(t *testing.T) {
	r := newEnergyTestRouter(stubTraining{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/daily/energy?date=2026-03-14&neatAdjustment=250&recoveryModifier=-100", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var report services.DailyEnergyReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if report.Date != "2026-03-14" {
		t.Errorf("date = %q, want 2026-03-14", report.Date)
	}
	if report.NeatAdjustment != 250 || report.RecoveryModifier != -100 {
		t.Errorf("overrides not applied: neat=%d recovery=%d", report.NeatAdjustment, report.RecoveryModifier)
	}
	// full fallback: bmr round(24*70*0.9)
	if report.BMR != 1512 {
		t.Errorf("bmr = %d, want 1512", report.BMR)
	}
}

func TestDailyEnergyEndpointQueriesLocalDayWindow(t *testing.T) {
	training := &recordingTraining{}
	r := newEnergyTestRouter(training)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/daily/energy?date=2026-03-14", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	wantStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	if !training.start.Equal(wantStart) {
		t.Errorf("window start = %v, want local midnight %v", training.start, wantStart)
	}
	if training.end.Location() != time.Local {
		t.Errorf("window end location = %v, want %v", training.end.Location(), time.Local)
	}
	if got := training.end.Sub(training.start); got != 24*time.Hour-time.Nanosecond {
		t.Errorf("window span = %v, want %v", got, 24*time.Hour-time.Nanosecond)
	}
}

func TestDailyEnergyEndpointRejectsMalformedQuery(t *testing.T) {
	r := newEnergyTestRouter(stubTraining{})

	for _, q := range []string{
		"date=14-03-2026",
		"date=notadate",
		"neatAdjustment=lots",
		"recoveryModifier=1.5",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/daily/energy?"+q, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("query %q: status = %d, want 400", q, w.Code)
		}
	}
}

func TestWeeklySummaryEndpoint(t *testing.T) {
	r := newEnergyTestRouter(stubTraining{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/weekly/summary?date=2026-03-14", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var summary services.WeeklyEnergySummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(summary.Days) != 7 {
		t.Errorf("days = %d, want 7", len(summary.Days))
	}
	// The date parameter must anchor the window, not be ignored.
	if summary.StartDate != "2026-03-08" || summary.EndDate != "2026-03-14" {
		t.Errorf("range = %s..%s, want 2026-03-08..2026-03-14", summary.StartDate, summary.EndDate)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/weekly/summary?date=bogus", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed date: status = %d, want 400", w.Code)
	}
}
