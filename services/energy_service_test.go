package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/JUN1078/game-based-learning/models"
)

type fakeInBodySource struct{ report *models.InBodyReport }

func (f *fakeInBodySource) Latest(ctx context.Context, userID string) (*models.InBodyReport, error) {
	return f.report, nil
}

type fakeTrainingSource struct{ sessions []models.CorosUpload }

func (f *fakeTrainingSource) ListForDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.CorosUpload, error) {
	var out []models.CorosUpload
	for _, s := range f.sessions {
		if !s.CreatedAt.Before(start) && !s.CreatedAt.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeFoodSource struct{ logs []models.FoodLog }

func (f *fakeFoodSource) ListForDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.FoodLog, error) {
	var out []models.FoodLog
	for _, l := range f.logs {
		if !l.CreatedAt.Before(start) && !l.CreatedAt.After(end) {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeUserSource struct{ user *models.User }

func (f *fakeUserSource) ByID(ctx context.Context, userID string) (*models.User, error) {
	return f.user, nil
}

func fptr(v float64) *float64 { return &v }

func newTestEnergyService(report *models.InBodyReport, sessions []models.CorosUpload, logs []models.FoodLog, user *models.User) *EnergyService {
	return NewEnergyService(
		&fakeInBodySource{report: report},
		&fakeTrainingSource{sessions: sessions},
		&fakeFoodSource{logs: logs},
		&fakeUserSource{user: user},
	)
}

var testDay = time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)

func TestDailyFullScenario(t *testing.T) {
	t.Parallel()

	svc := newTestEnergyService(
		&models.InBodyReport{ID: "rep-1", Weight: 64.2, BodyFatPercent: fptr(17.6), CreatedAt: testDay},
		[]models.CorosUpload{{ActiveCalories: 820, CreatedAt: testDay}},
		[]models.FoodLog{{Calories: 1840, CreatedAt: testDay}},
		&models.User{ID: "u1"},
	)

	got, err := svc.Daily(context.Background(), "u1", testDay, 200, 0)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}

	if got.BMR != 1164 {
		t.Errorf("bmr = %d, want 1164", got.BMR)
	}
	if got.DailyEnergyNeed != 2184 {
		t.Errorf("dailyEnergyNeed = %d, want 2184", got.DailyEnergyNeed)
	}
	if got.Macros.Protein != 95 {
		t.Errorf("protein = %d, want 95", got.Macros.Protein)
	}
	if got.Macros.Fat != 58 {
		t.Errorf("fat = %d, want 58", got.Macros.Fat)
	}
	// 320.5 remaining carb calories round half away from zero.
	if got.Macros.Carbs != 321 {
		t.Errorf("carbs = %d, want 321", got.Macros.Carbs)
	}
	if got.CaloriesEaten != 1840 {
		t.Errorf("caloriesEaten = %v, want 1840", got.CaloriesEaten)
	}
	if got.Coaching.Summary != "Energy intake aligned with today's target." {
		t.Errorf("coaching summary = %q", got.Coaching.Summary)
	}
	if got.Coaching.Warning != "" {
		t.Errorf("unexpected coaching warning %q", got.Coaching.Warning)
	}
	if got.Sources.InBody == nil || got.Sources.InBody.ID != "rep-1" {
		t.Errorf("sources.inBody = %+v, want rep-1", got.Sources.InBody)
	}
	if got.Sources.CorosSessions != 1 || got.Sources.FoodLogs != 1 {
		t.Errorf("sources counts = %d/%d, want 1/1", got.Sources.CorosSessions, got.Sources.FoodLogs)
	}
	if got.Date != "2026-03-14" {
		t.Errorf("date = %q, want 2026-03-14", got.Date)
	}
}

func TestDailyDeterminism(t *testing.T) {
	t.Parallel()

	svc := newTestEnergyService(
		&models.InBodyReport{ID: "rep-1", Weight: 72, FatFreeMass: fptr(58.5), BMR: fptr(1610), CreatedAt: testDay},
		[]models.CorosUpload{{ActiveCalories: 450, CreatedAt: testDay}},
		[]models.FoodLog{{Calories: 900, CreatedAt: testDay}, {Calories: 650, CreatedAt: testDay}},
		&models.User{ID: "u1", WeightKg: fptr(72)},
	)

	first, err := svc.Daily(context.Background(), "u1", testDay, 200, -100)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	second, err := svc.Daily(context.Background(), "u1", testDay, 200, -100)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls diverged:\n%+v\n%+v", first, second)
	}
}

func TestDailyMacroIdentity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		report *models.InBodyReport
		active float64
	}{
		{"report bmr", &models.InBodyReport{Weight: 80, FatFreeMass: fptr(64), BMR: fptr(1750), CreatedAt: testDay}, 300},
		{"lean mass bmr", &models.InBodyReport{Weight: 64.2, BodyFatPercent: fptr(17.6), CreatedAt: testDay}, 820},
		{"no report", nil, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var sessions []models.CorosUpload
			if tc.active > 0 {
				sessions = []models.CorosUpload{{ActiveCalories: tc.active, CreatedAt: testDay}}
			}
			svc := newTestEnergyService(tc.report, sessions, nil, &models.User{ID: "u1"})

			got, err := svc.Daily(context.Background(), "u1", testDay, 200, 0)
			if err != nil {
				t.Fatalf("Daily: %v", err)
			}
			allocated := got.Macros.Protein*4 + got.Macros.Fat*9 + got.Macros.Carbs*4
			diff := allocated - got.DailyEnergyNeed
			if diff < -3 || diff > 3 {
				t.Errorf("macro identity off by %d kcal (allocated %d, need %d)", diff, allocated, got.DailyEnergyNeed)
			}
		})
	}
}

func TestDailyNonNegativity(t *testing.T) {
	t.Parallel()

	svc := newTestEnergyService(nil, nil, nil, nil)

	got, err := svc.Daily(context.Background(), "u1", testDay, 200, -5000)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if got.DailyEnergyNeed != 0 {
		t.Errorf("dailyEnergyNeed = %d, want 0", got.DailyEnergyNeed)
	}
	if got.Macros.Carbs != 0 {
		t.Errorf("carbs = %d, want 0", got.Macros.Carbs)
	}
}

func TestDailyFallbackChain(t *testing.T) {
	t.Parallel()

	// No report and no profile weight: lean mass 60, weight 70, and the
	// BMR estimate comes from weight, not the defaulted lean mass.
	svc := newTestEnergyService(nil, nil, nil, &models.User{ID: "u1"})

	got, err := svc.Daily(context.Background(), "u1", testDay, 200, 0)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if got.BMR != 1512 {
		t.Errorf("bmr = %d, want 1512", got.BMR)
	}
	if got.Macros.Protein != 108 { // round(60 * 1.8)
		t.Errorf("protein = %d, want 108", got.Macros.Protein)
	}
	if got.Macros.Fat != 63 { // round(70 * 0.9)
		t.Errorf("fat = %d, want 63", got.Macros.Fat)
	}
	if got.Sources.InBody != nil {
		t.Errorf("sources.inBody = %+v, want nil", got.Sources.InBody)
	}
}

func TestDailyFallbackProfileWeight(t *testing.T) {
	t.Parallel()

	// Profile weight drives both lean mass and the BMR estimate.
	svc := newTestEnergyService(nil, nil, nil, &models.User{ID: "u1", WeightKg: fptr(80)})

	got, err := svc.Daily(context.Background(), "u1", testDay, 200, 0)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if got.BMR != 1408 { // round(22 * 80*0.8)
		t.Errorf("bmr = %d, want 1408", got.BMR)
	}
	if got.Macros.Protein != 115 { // round(64 * 1.8)
		t.Errorf("protein = %d, want 115", got.Macros.Protein)
	}
	if got.Macros.Fat != 72 { // round(80 * 0.9)
		t.Errorf("fat = %d, want 72", got.Macros.Fat)
	}
}

func TestDailyDayWindow(t *testing.T) {
	t.Parallel()

	inside := time.Date(2026, 3, 14, 23, 59, 59, 0, time.Local)
	outside := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	svc := newTestEnergyService(
		nil,
		[]models.CorosUpload{
			{ActiveCalories: 300, CreatedAt: inside},
			{ActiveCalories: 999, CreatedAt: outside},
		},
		[]models.FoodLog{
			{Calories: 500, CreatedAt: inside},
			{Calories: 777, CreatedAt: outside},
		},
		&models.User{ID: "u1"},
	)

	got, err := svc.Daily(context.Background(), "u1", testDay, 200, 0)
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if got.ActiveCalories != 300 {
		t.Errorf("activeCalories = %v, want 300", got.ActiveCalories)
	}
	if got.CaloriesEaten != 500 {
		t.Errorf("caloriesEaten = %v, want 500", got.CaloriesEaten)
	}
}

func TestCoachingNoteBranches(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		need        int
		eaten       float64
		recovery    int
		wantSummary string
		wantWarning string
	}{
		{
			name: "large deficit", need: 2500, eaten: 1800,
			wantSummary: "You are under target. Add a recovery-focused meal tonight.",
			wantWarning: "Large deficit detected. Consider a carb-forward dinner.",
		},
		{
			name: "over target", need: 2000, eaten: 2300,
			wantSummary: "Energy intake exceeds today's target. Focus on hydration.",
			wantWarning: "Over target. Check portion sizes tomorrow.",
		},
		{
			name: "aligned", need: 2200, eaten: 2100,
			wantSummary: "Energy intake aligned with today's target.",
		},
		{
			name: "aligned strained recovery", need: 2200, eaten: 2100, recovery: -150,
			wantSummary: "Energy intake aligned with today's target.",
			wantWarning: "Recovery is strained. Prioritize sleep.",
		},
		{
			// deficit of exactly 500 stays in the aligned branch
			name: "deficit boundary", need: 2300, eaten: 1800,
			wantSummary: "Energy intake aligned with today's target.",
		},
		{
			// deficit of exactly -200 stays in the aligned branch
			name: "surplus boundary", need: 2000, eaten: 2200,
			wantSummary: "Energy intake aligned with today's target.",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := buildCoachingNote(tc.need, tc.eaten, tc.recovery)
			if got.Summary != tc.wantSummary {
				t.Errorf("summary = %q, want %q", got.Summary, tc.wantSummary)
			}
			if got.Warning != tc.wantWarning {
				t.Errorf("warning = %q, want %q", got.Warning, tc.wantWarning)
			}
		})
	}
}

func TestWeeklyAveraging(t *testing.T) {
	t.Parallel()

	// Need values across the seven days come from per-day active
	// calories on top of a fixed report BMR. bmr 1700 + neat 200 = 1900
	// base, so active calories [500,600,700,500,600,700,600] give needs
	// [2400,2500,2600,2400,2500,2600,2500].
	active := []float64{500, 600, 700, 500, 600, 700, 600}
	var sessions []models.CorosUpload
	var logs []models.FoodLog
	for i, a := range active {
		day := testDay.AddDate(0, 0, -6+i)
		sessions = append(sessions, models.CorosUpload{ActiveCalories: a, CreatedAt: day})
		logs = append(logs, models.FoodLog{Calories: 2450, CreatedAt: day})
	}

	svc := newTestEnergyService(
		&models.InBodyReport{ID: "rep-1", Weight: 70, BMR: fptr(1700), CreatedAt: testDay},
		sessions, logs,
		&models.User{ID: "u1"},
	)

	got, err := svc.Weekly(context.Background(), "u1", testDay)
	if err != nil {
		t.Fatalf("Weekly: %v", err)
	}
	if len(got.Days) != 7 {
		t.Fatalf("days = %d, want 7", len(got.Days))
	}
	if got.AverageEnergyNeed != 2500 {
		t.Errorf("averageEnergyNeed = %d, want 2500", got.AverageEnergyNeed)
	}
	if got.AverageCaloriesEaten != 2450 {
		t.Errorf("averageCaloriesEaten = %d, want 2450", got.AverageCaloriesEaten)
	}
	if got.StartDate != "2026-03-08" || got.EndDate != "2026-03-14" {
		t.Errorf("range = %s..%s, want 2026-03-08..2026-03-14", got.StartDate, got.EndDate)
	}
	if got.Coaching.Summary != "Weekly intake below target. Consider adding carbs around training." {
		t.Errorf("coaching summary = %q", got.Coaching.Summary)
	}
	if got.Coaching.Warning != "" {
		t.Errorf("unexpected warning %q (deficit of 50 is under the 300 threshold)", got.Coaching.Warning)
	}
}

func TestWeeklySustainedDeficitWarning(t *testing.T) {
	t.Parallel()

	var logs []models.FoodLog
	for i := 0; i < 7; i++ {
		logs = append(logs, models.FoodLog{Calories: 1200, CreatedAt: testDay.AddDate(0, 0, -i)})
	}
	svc := newTestEnergyService(
		&models.InBodyReport{ID: "rep-1", Weight: 70, BMR: fptr(1700), CreatedAt: testDay},
		nil, logs,
		&models.User{ID: "u1"},
	)

	got, err := svc.Weekly(context.Background(), "u1", testDay)
	if err != nil {
		t.Fatalf("Weekly: %v", err)
	}
	// avg need 1900, avg eaten 1200
	if got.Coaching.Warning != "Sustained deficit could impair recovery. Adjust intake." {
		t.Errorf("warning = %q", got.Coaching.Warning)
	}
}
