package services

import (
	"testing"
)

func TestParseFoodStubDeterminism(t *testing.T) {
	t.Parallel()

	svc := NewParseService(nil, nil)

	first := svc.ParseFood("overnight oats with berries", "")
	second := svc.ParseFood("overnight oats with berries", "")
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected one item, got %d and %d", len(first), len(second))
	}
	if first[0] != second[0] {
		t.Errorf("stub output diverged: %+v vs %+v", first[0], second[0])
	}
	if first[0].FoodName != "Overnight oats" {
		t.Errorf("foodName = %q, want Overnight oats", first[0].FoodName)
	}

	generic := svc.ParseFood("chicken and rice", "")
	if generic[0].FoodName != "Mixed meal" {
		t.Errorf("generic foodName = %q, want Mixed meal", generic[0].FoodName)
	}
}

func TestParseInBodyStub(t *testing.T) {
	t.Parallel()

	svc := NewParseService(nil, nil)

	got := svc.ParseInBody("InBody scan, 70kg-ish", "")
	if got.Weight != 70.1 {
		t.Errorf("weight = %v, want 70.1", got.Weight)
	}
	if got.FatFreeMass != 70.1-11.3 {
		t.Errorf("fatFreeMass = %v, want %v", got.FatFreeMass, 70.1-11.3)
	}
	if got.ConfidenceScore != 0.88 {
		t.Errorf("confidenceScore = %v, want 0.88", got.ConfidenceScore)
	}
}

func TestParseCorosStub(t *testing.T) {
	t.Parallel()

	svc := NewParseService(nil, nil)

	if got := svc.ParseCoros("easy spin", ""); got.ActiveCalories != 540 {
		t.Errorf("activeCalories = %v, want 540", got.ActiveCalories)
	}
	if got := svc.ParseCoros("Long ride Sunday", ""); got.ActiveCalories != 820 {
		t.Errorf("long session activeCalories = %v, want 820", got.ActiveCalories)
	}
}

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"surrounded by prose", "Sure! Here you go:\n```json\n{\"a\":1}\n```\nHope that helps.", `{"a":1}`},
		{"empty", "", ""},
		{"no json", "I could not parse that.", ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := extractJSON(tc.in)
			if tc.want == "" {
				if got != nil {
					t.Errorf("extractJSON(%q) = %s, want nil", tc.in, got)
				}
				return
			}
			if string(got) != tc.want {
				t.Errorf("extractJSON(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}
