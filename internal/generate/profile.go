package generate

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for profile validation.
var (
	ErrInvalidAge       = errors.New("age must be at least 1")
	ErrInvalidGender    = errors.New("gender must be male or female")
	ErrUnknownCondition = errors.New("unknown condition")
	ErrMissingSymptoms  = errors.New("symptoms are required")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
)

// Limits on free-text fields.
const (
	MaxAge              = 150
	MaxMedicationLength = 1000
	MaxSymptomsLength   = 5000
)

// Gender is the patient's gender as written in the prompt.
type Gender string

// Genders accepted by the service.
const (
	GenderMale   Gender = "남성"
	GenderFemale Gender = "여성"
)

// ParseGender accepts English or Korean spellings.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", string(GenderMale):
		return GenderMale, nil
	case "female", "f", string(GenderFemale):
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
	}
}

// Conditions lists the medical conditions a profile may select.
var Conditions = []string{
	"고혈압",
	"당뇨(1형/2형)",
	"고지혈증",
	"신장질환(CKD)",
	"투석 중",
	"간경화/지방간",
	"위염/위궤양",
	"역류성 식도염",
	"크론병/궤양성대장염",
	"갑상선 질환",
	"통풍",
	"골다공증",
	"심부전",
	"암 관리",
	"빈혈",
	"비만",
}

// Profile holds the patient attributes sent to the generation service.
type Profile struct {
	Age        int
	Gender     Gender
	Conditions []string
	Medication string
	Symptoms   string
}

// Validate checks required fields and that every condition is known.
func (p Profile) Validate() error {
	if p.Age < 1 || p.Age > MaxAge {
		return fmt.Errorf("%w: got %d", ErrInvalidAge, p.Age)
	}
	if p.Gender != GenderMale && p.Gender != GenderFemale {
		return fmt.Errorf("%w: %q", ErrInvalidGender, p.Gender)
	}
	for _, c := range p.Conditions {
		if !slices.Contains(Conditions, c) {
			return fmt.Errorf("%w: %q", ErrUnknownCondition, c)
		}
	}
	if strings.TrimSpace(p.Symptoms) == "" {
		return ErrMissingSymptoms
	}
	if len(p.Medication) > MaxMedicationLength {
		return fmt.Errorf("%w: medication (%d chars, max %d)", ErrFieldTooLong, len(p.Medication), MaxMedicationLength)
	}
	if len(p.Symptoms) > MaxSymptomsLength {
		return fmt.Errorf("%w: symptoms (%d chars, max %d)", ErrFieldTooLong, len(p.Symptoms), MaxSymptomsLength)
	}
	return nil
}
