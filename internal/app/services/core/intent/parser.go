package intent

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// BookingIntent is the structured result the model is asked to produce.
// Date is ISO (2025-07-25) and Time is 24-hour (16:00); empty strings mean
// the field was absent from the message.
type BookingIntent struct {
	Symptom                string   `json:"symptom"`
	RecommendedSpecialties []string `json:"recommendedSpecialties"`
	DoctorName             string   `json:"doctorName"`
	Date                   string   `json:"date"`
	Time                   string   `json:"time"`
}

// Models wrap JSON in prose or code fences more often than not; take the
// first brace-delimited block and ignore the rest.
var jsonBlockPattern = regexp.MustCompile(`(?s)\{[^{}]*\}`)

func buildPrompt(message string, now time.Time) string {
	return fmt.Sprintf(
		"You are a JSON-only parser. Today's date is %s. Extract the following from the sentence:\n"+
			"- \"symptom\"\n"+
			"- \"recommendedSpecialties\": an array of up to 3 doctor specialties\n"+
			"- \"doctorName\"\n"+
			"- \"date\" (YYYY-MM-DD, resolving words like tomorrow)\n"+
			"- \"time\" (24-hour format like \"16:00\")\n\n"+
			"Sentence: %q\n\n"+
			"Example Output:\n"+
			`{"symptom": "back pain", "recommendedSpecialties": ["Orthopedic", "Physiotherapist"], "doctorName": "", "date": "2025-07-25", "time": "16:00"}`,
		now.Format(constvars.SlotDateInputFormat),
		message,
	)
}

// parseIntent pulls the JSON block out of the raw completion and decodes it.
func parseIntent(raw string) (*BookingIntent, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, exceptions.ErrUpstreamEmpty(nil)
	}

	block := jsonBlockPattern.FindString(raw)
	if block == "" {
		return nil, exceptions.ErrMalformedIntent(nil)
	}

	var intent BookingIntent
	if err := json.Unmarshal([]byte(block), &intent); err != nil {
		return nil, exceptions.ErrMalformedIntent(err)
	}

	intent.Symptom = strings.TrimSpace(intent.Symptom)
	intent.DoctorName = strings.TrimSpace(intent.DoctorName)
	intent.Date = strings.TrimSpace(intent.Date)
	intent.Time = strings.TrimSpace(intent.Time)

	specialties := intent.RecommendedSpecialties[:0]
	for _, speciality := range intent.RecommendedSpecialties {
		if trimmed := strings.TrimSpace(speciality); trimmed != "" {
			specialties = append(specialties, trimmed)
		}
	}
	intent.RecommendedSpecialties = specialties

	if intent.Date == "" || intent.Time == "" {
		return nil, exceptions.ErrIntentMissingFields(nil)
	}
	return &intent, nil
}

// symptomSpecialties is the last-resort mapping when neither the named
// doctor nor the recommended specialties produced a candidate. Keyed by the
// extracted symptom, lower-cased, exact.
var symptomSpecialties = map[string]string{
	"back pain": "Orthopedic",
	"skin":      "Dermatologist",
	"heart":     "Cardiologist",
	"lungs":     "Pulmonologist",
	"children":  "Pediatrician",
	"general":   "General physician",
	"physician": "General physician",
}

func specialtyForSymptom(symptom string) string {
	return symptomSpecialties[strings.ToLower(strings.TrimSpace(symptom))]
}

// normalizeDoctorName strips the honorific so "Dr. Smith" matches "Smith".
func normalizeDoctorName(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	lowered = strings.TrimPrefix(lowered, "dr.")
	lowered = strings.TrimPrefix(lowered, "dr ")
	return strings.TrimSpace(lowered)
}
