package generate

import (
	"errors"
	"strings"
	"testing"
)

func TestParseGender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Gender
		wantErr bool
	}{
		{in: "male", want: GenderMale},
		{in: "Female", want: GenderFemale},
		{in: " M ", want: GenderMale},
		{in: "f", want: GenderFemale},
		{in: "남성", want: GenderMale},
		{in: "여성", want: GenderFemale},
		{in: "other", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseGender(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGender) {
					t.Errorf("ParseGender(%q) error = %v, want ErrInvalidGender", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGender(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseGender(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestProfile_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Profile)
		wantErr error
	}{
		{name: "valid", modify: func(*Profile) {}},
		{name: "no conditions", modify: func(p *Profile) { p.Conditions = nil }},
		{name: "no medication", modify: func(p *Profile) { p.Medication = "" }},
		{name: "zero age", modify: func(p *Profile) { p.Age = 0 }, wantErr: ErrInvalidAge},
		{name: "age too high", modify: func(p *Profile) { p.Age = MaxAge + 1 }, wantErr: ErrInvalidAge},
		{name: "empty gender", modify: func(p *Profile) { p.Gender = "" }, wantErr: ErrInvalidGender},
		{name: "unknown condition", modify: func(p *Profile) { p.Conditions = []string{"감기"} }, wantErr: ErrUnknownCondition},
		{name: "blank symptoms", modify: func(p *Profile) { p.Symptoms = "  \n" }, wantErr: ErrMissingSymptoms},
		{
			name:    "medication too long",
			modify:  func(p *Profile) { p.Medication = strings.Repeat("a", MaxMedicationLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "symptoms too long",
			modify:  func(p *Profile) { p.Symptoms = strings.Repeat("a", MaxSymptomsLength+1) },
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := validProfile()
			tt.modify(&p)
			err := p.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConditions(t *testing.T) {
	t.Parallel()

	if len(Conditions) != 16 {
		t.Errorf("got %d conditions, want 16", len(Conditions))
	}
	seen := make(map[string]bool)
	for _, c := range Conditions {
		if seen[c] {
			t.Errorf("duplicate condition %q", c)
		}
		seen[c] = true
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("full profile", func(t *testing.T) {
		t.Parallel()

		got := BuildPrompt(validProfile())
		want := "[Role] 당신은 '메디푸드 분석 시스템'입니다.\n" +
			"[Instruction] 약초 제외. 30일 식단표는 반드시 각 주차별로 표로 작성.\n" +
			"[User Data] 나이:58, 성별:여성, 질환:고혈압, 통풍, 약물:암로디핀, 증상:아침에 손가락 관절이 붓습니다"
		if got != want {
			t.Errorf("BuildPrompt() =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("optional fields fall back", func(t *testing.T) {
		t.Parallel()

		p := validProfile()
		p.Conditions = nil
		p.Medication = " "
		got := BuildPrompt(p)
		if !strings.Contains(got, "질환:없음, 약물:없음,") {
			t.Errorf("BuildPrompt() = %q, want 없음 placeholders", got)
		}
	})
}
