package services

import (
	"context"
	"math"
	"time"

	"github.com/JUN1078/game-based-learning/models"
)

// Defaults applied when the caller supplies no overrides. The weekly
// path always uses them.
const (
	DefaultNeatAdjustment   = 200
	DefaultRecoveryModifier = 0
)

// The energy pipeline reads through narrow source interfaces so it can
// be exercised against in-memory fixtures. The GORM-backed services
// below satisfy them.

type InBodySource interface {
	Latest(ctx context.Context, userID string) (*models.InBodyReport, error)
}

type TrainingSource interface {
	ListForDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.CorosUpload, error)
}

type FoodLogSource interface {
	ListForDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.FoodLog, error)
}

type UserSource interface {
	ByID(ctx context.Context, userID string) (*models.User, error)
}

type EnergyService struct {
	inBody InBodySource
	coros  TrainingSource
	food   FoodLogSource
	users  UserSource
}

func NewEnergyService(inBody InBodySource, coros TrainingSource, food FoodLogSource, users UserSource) *EnergyService {
	return &EnergyService{inBody: inBody, coros: coros, food: food, users: users}
}

type Macros struct {
	Protein int `json:"protein"`
	Fat     int `json:"fat"`
	Carbs   int `json:"carbs"`
}

type InBodySourceInfo struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReportSources struct {
	InBody        *InBodySourceInfo `json:"inBody"`
	CorosSessions int               `json:"corosSessions"`
	FoodLogs      int               `json:"foodLogs"`
}

type CoachingNote struct {
	Summary string `json:"summary"`
	Warning string `json:"warning,omitempty"`
}

// DailyEnergyReport is derived on every call; nothing here is persisted.
type DailyEnergyReport struct {
	Date             string        `json:"date"`
	BMR              int           `json:"bmr"`
	ActiveCalories   float64       `json:"activeCalories"`
	NeatAdjustment   int           `json:"neatAdjustment"`
	RecoveryModifier int           `json:"recoveryModifier"`
	DailyEnergyNeed  int           `json:"dailyEnergyNeed"`
	CaloriesEaten    float64       `json:"caloriesEaten"`
	Macros           Macros        `json:"macros"`
	Sources          ReportSources `json:"sources"`
	Coaching         CoachingNote  `json:"coaching"`
}

type WeeklyEnergySummary struct {
	StartDate            string              `json:"startDate"`
	EndDate              string              `json:"endDate"`
	AverageEnergyNeed    int                 `json:"averageEnergyNeed"`
	AverageCaloriesEaten int                 `json:"averageCaloriesEaten"`
	Days                 []DailyEnergyReport `json:"days"`
	Coaching             CoachingNote        `json:"coaching"`
}

// Daily computes one day's energy-need report. Missing data never
// errors: the fallback chain produces a less personalized result
// instead. Store failures propagate unchanged.
func (s *EnergyService) Daily(ctx context.Context, userID string, date time.Time, neatAdjustment, recoveryModifier int) (*DailyEnergyReport, error) {
	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	report, err := s.inBody.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}

	start, end := dayStart(date), dayEnd(date)

	sessions, err := s.coros.ListForDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	var activeCalories float64
	for _, sess := range sessions {
		activeCalories += sess.ActiveCalories
	}

	leanMass, leanMassMeasured := resolveLeanMass(report, user)
	weight := resolveWeight(report, user)
	bmr := resolveBMR(report, leanMass, leanMassMeasured, weight)

	dailyEnergyNeed := int(math.Round(float64(bmr) + activeCalories + float64(neatAdjustment) + float64(recoveryModifier)))
	if dailyEnergyNeed < 0 {
		dailyEnergyNeed = 0
	}

	protein := int(math.Round(leanMass * 1.8))
	fat := int(math.Round(weight * 0.9))
	carbs := int(math.Round(float64(dailyEnergyNeed-(protein*4+fat*9)) / 4))
	if carbs < 0 {
		carbs = 0
	}

	logs, err := s.food.ListForDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	var caloriesEaten float64
	for _, l := range logs {
		caloriesEaten += l.Calories
	}

	sources := ReportSources{CorosSessions: len(sessions), FoodLogs: len(logs)}
	if report != nil {
		sources.InBody = &InBodySourceInfo{ID: report.ID, CreatedAt: report.CreatedAt}
	}

	return &DailyEnergyReport{
		Date:             date.Format("2006-01-02"),
		BMR:              bmr,
		ActiveCalories:   activeCalories,
		NeatAdjustment:   neatAdjustment,
		RecoveryModifier: recoveryModifier,
		DailyEnergyNeed:  dailyEnergyNeed,
		CaloriesEaten:    caloriesEaten,
		Macros:           Macros{Protein: protein, Fat: fat, Carbs: carbs},
		Sources:          sources,
		Coaching:         buildCoachingNote(dailyEnergyNeed, caloriesEaten, recoveryModifier),
	}, nil
}

// Weekly aggregates the seven days ending at endDate. Each day is an
// independent read; no cross-day consistency is guaranteed.
func (s *EnergyService) Weekly(ctx context.Context, userID string, endDate time.Time) (*WeeklyEnergySummary, error) {
	days := make([]DailyEnergyReport, 0, 7)
	for i := 6; i >= 0; i-- {
		daily, err := s.Daily(ctx, userID, endDate.AddDate(0, 0, -i), DefaultNeatAdjustment, DefaultRecoveryModifier)
		if err != nil {
			return nil, err
		}
		days = append(days, *daily)
	}

	var needSum, eatenSum float64
	for _, d := range days {
		needSum += float64(d.DailyEnergyNeed)
		eatenSum += d.CaloriesEaten
	}
	avgNeed := int(math.Round(needSum / float64(len(days))))
	avgEaten := int(math.Round(eatenSum / float64(len(days))))

	coaching := CoachingNote{Summary: "Weekly intake on track. Maintain current fueling rhythm."}
	if avgEaten < avgNeed {
		coaching.Summary = "Weekly intake below target. Consider adding carbs around training."
	}
	if avgEaten < avgNeed-300 {
		coaching.Warning = "Sustained deficit could impair recovery. Adjust intake."
	}

	return &WeeklyEnergySummary{
		StartDate:            days[0].Date,
		EndDate:              days[len(days)-1].Date,
		AverageEnergyNeed:    avgNeed,
		AverageCaloriesEaten: avgEaten,
		Days:                 days,
		Coaching:             coaching,
	}, nil
}

// resolveLeanMass walks the fallback chain in order: fat-free mass from
// the latest report, then weight and body-fat percent, then the profile
// weight at 80%, then 60 kg. The second return reports whether the
// value came from actual data; the 60 kg default does not, and it must
// not feed the lean-mass BMR estimate.
func resolveLeanMass(report *models.InBodyReport, user *models.User) (float64, bool) {
	if report != nil && report.FatFreeMass != nil {
		return *report.FatFreeMass, true
	}
	if report != nil && report.Weight != 0 && report.BodyFatPercent != nil && *report.BodyFatPercent != 0 {
		return report.Weight * (1 - *report.BodyFatPercent/100), true
	}
	if user != nil && user.WeightKg != nil {
		return *user.WeightKg * 0.8, true
	}
	return 60, false
}

func resolveWeight(report *models.InBodyReport, user *models.User) float64 {
	if report != nil {
		return report.Weight
	}
	if user != nil && user.WeightKg != nil {
		return *user.WeightKg
	}
	return 70
}

func resolveBMR(report *models.InBodyReport, leanMass float64, leanMassMeasured bool, weight float64) int {
	if report != nil && report.BMR != nil {
		return int(math.Round(*report.BMR))
	}
	if leanMassMeasured && leanMass > 0 {
		return int(math.Round(22 * leanMass))
	}
	return int(math.Round(24 * weight * 0.9))
}

// buildCoachingNote selects exactly one branch. The 500 and -200
// thresholds are strict comparisons: a deficit of exactly 500 lands in
// the aligned branch.
func buildCoachingNote(dailyEnergyNeed int, caloriesEaten float64, recoveryModifier int) CoachingNote {
	deficit := float64(dailyEnergyNeed) - caloriesEaten
	if deficit > 500 {
		return CoachingNote{
			Summary: "You are under target. Add a recovery-focused meal tonight.",
			Warning: "Large deficit detected. Consider a carb-forward dinner.",
		}
	}
	if deficit < -200 {
		return CoachingNote{
			Summary: "Energy intake exceeds today's target. Focus on hydration.",
			Warning: "Over target. Check portion sizes tomorrow.",
		}
	}
	note := CoachingNote{Summary: "Energy intake aligned with today's target."}
	if recoveryModifier < 0 {
		note.Warning = "Recovery is strained. Prioritize sleep."
	}
	return note
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
