package generate

import (
	"strconv"
	"strings"
)

// none fills optional fields the patient left blank.
const none = "없음"

// BuildPrompt renders the instruction sent to the generation service.
// The profile is assumed valid.
func BuildPrompt(p Profile) string {
	conditions := none
	if len(p.Conditions) > 0 {
		conditions = strings.Join(p.Conditions, ", ")
	}
	medication := strings.TrimSpace(p.Medication)
	if medication == "" {
		medication = none
	}

	var b strings.Builder
	b.WriteString("[Role] 당신은 '메디푸드 분석 시스템'입니다.\n")
	b.WriteString("[Instruction] 약초 제외. 30일 식단표는 반드시 각 주차별로 표로 작성.\n")
	b.WriteString("[User Data] 나이:")
	b.WriteString(strconv.Itoa(p.Age))
	b.WriteString(", 성별:")
	b.WriteString(string(p.Gender))
	b.WriteString(", 질환:")
	b.WriteString(conditions)
	b.WriteString(", 약물:")
	b.WriteString(medication)
	b.WriteString(", 증상:")
	b.WriteString(strings.TrimSpace(p.Symptoms))
	return b.String()
}
