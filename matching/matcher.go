// Package matching ranks available doctors against a patient's free-text
// symptoms and optional specialization category.
package matching

import (
	"fmt"
	"sort"
	"strings"

	"TeleMed/models"
)

// Scoring weights. Keyword bonuses stack per matching keyword, so scores
// are unbounded above and are never normalized; callers rendering a match
// percentage must tolerate values over 100%.
const (
	neutralScore    = 1.0
	baseScore       = 0.5
	categoryBonus   = 0.5
	keywordBonus    = 0.3
	experienceBonus = 0.1

	experienceThresholdYears = 5
	maxSurfacedReasons       = 2
)

// symptomKeywords maps symptom phrases to the specializations that treat
// them. Matching is case-insensitive substring both ways: keyword against
// the symptoms text, specialization entry against the doctor's
// specialization label.
var symptomKeywords = map[string][]string{
	"chest pain": {"Cardiology", "Emergency Medicine"},
	"heart":      {"Cardiology"},
	"breathing":  {"Pulmonology", "Emergency Medicine"},
	"skin":       {"Dermatology"},
	"rash":       {"Dermatology"},
	"headache":   {"Neurology", "General Medicine"},
	"migraine":   {"Neurology"},
	"stomach":    {"Gastroenterology"},
	"anxiety":    {"Psychiatry", "Psychology"},
	"depression": {"Psychiatry", "Psychology"},
	"joint":      {"Orthopedics"},
	"bone":       {"Orthopedics"},
	"fever":      {"General Medicine", "Pediatrics"},
}

// keywordOrder fixes the evaluation order so reason lists are
// deterministic.
var keywordOrder = []string{
	"chest pain", "heart", "breathing", "skin", "rash", "headache",
	"migraine", "stomach", "anxiety", "depression", "joint", "bone", "fever",
}

// RankedDoctor is a doctor annotated with its match score and the reasons
// behind it.
type RankedDoctor struct {
	models.Doctor
	MatchScore   float64  `json:"match_score"`
	MatchReasons []string `json:"match_reasons"`
}

// Rank scores every doctor against the symptoms and category and returns
// them sorted by descending score. The sort is stable: doctors with equal
// scores keep their input order. Rank has no side effects and cannot fail;
// empty inputs degrade to the neutral branch.
func Rank(symptoms, category string, doctors []models.Doctor) []RankedDoctor {
	ranked := make([]RankedDoctor, 0, len(doctors))
	for _, doctor := range doctors {
		score, reasons := score(symptoms, category, doctor)
		if len(reasons) > maxSurfacedReasons {
			reasons = reasons[:maxSurfacedReasons]
		}
		ranked = append(ranked, RankedDoctor{
			Doctor:       doctor,
			MatchScore:   score,
			MatchReasons: reasons,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})
	return ranked
}

func score(symptoms, category string, doctor models.Doctor) (float64, []string) {
	if symptoms == "" && category == "" {
		return neutralScore, []string{availableReason(doctor)}
	}

	total := baseScore
	var reasons []string

	specialization := strings.ToLower(doctor.Specialization)
	if category != "" && strings.Contains(specialization, strings.ToLower(category)) {
		total += categoryBonus
		reasons = append(reasons, fmt.Sprintf("Specializes in %s", category))
	}

	loweredSymptoms := strings.ToLower(symptoms)
	for _, keyword := range keywordOrder {
		if !strings.Contains(loweredSymptoms, keyword) {
			continue
		}
		if specializationsMatch(symptomKeywords[keyword], specialization) {
			total += keywordBonus
			reasons = append(reasons, fmt.Sprintf("Expert in %s-related conditions", keyword))
		}
	}

	if doctor.ExperienceYears > experienceThresholdYears {
		total += experienceBonus
		reasons = append(reasons, fmt.Sprintf("%d years of experience", doctor.ExperienceYears))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, availableReason(doctor))
	}
	return total, reasons
}

func specializationsMatch(candidates []string, specialization string) bool {
	for _, candidate := range candidates {
		if strings.Contains(specialization, strings.ToLower(candidate)) {
			return true
		}
	}
	return false
}

func availableReason(doctor models.Doctor) string {
	return fmt.Sprintf("Available %s specialist", doctor.Specialization)
}
