package engine

import (
	"strconv"
	"strings"

	"github.com/titanchik/tg-calfit-bot/pkg/models"
)

// parseMeasure разбирает число из пользовательского ввода, очищая его
// от суффиксов единиц («75 кг», «175cm»), запятой вместо точки и
// случайного ведущего слэша.
func parseMeasure(input string, units ...string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	for _, u := range units {
		s = strings.ReplaceAll(s, u, "")
	}
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	s = strings.TrimPrefix(s, "/")

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseWeight — вес в кг, диапазон (0, 300].
func parseWeight(input string) (float64, bool) {
	w, ok := parseMeasure(input, "кг", "kg")
	if !ok || w <= 0 || w > 300 {
		return 0, false
	}
	return w, true
}

// parseHeight — рост в см, диапазон (0, 250].
func parseHeight(input string) (float64, bool) {
	h, ok := parseMeasure(input, "см", "cm")
	if !ok || h <= 0 || h > 250 {
		return 0, false
	}
	return h, true
}

// parseAge — возраст, диапазон (0, 120].
func parseAge(input string) (int, bool) {
	a, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || a <= 0 || a > 120 {
		return 0, false
	}
	return a, true
}

// parsePositiveInt — положительное целое (мл воды, минуты тренировки).
func parsePositiveInt(input string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// parsePositiveFloat — положительное число (граммы еды).
func parsePositiveFloat(input string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// parseGender принимает русские и английские варианты без учёта регистра.
func parseGender(input string) (models.Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "мужской", "male":
		return models.GenderMale, true
	case "женский", "female":
		return models.GenderFemale, true
	}
	return "", false
}

// parseActivity принимает русские и английские варианты без учёта регистра.
func parseActivity(input string) (models.ActivityLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "низкий", "low":
		return models.ActivityLow, true
	case "средний", "medium":
		return models.ActivityMedium, true
	case "высокий", "high":
		return models.ActivityHigh, true
	}
	return "", false
}
