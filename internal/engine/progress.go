package engine

import (
	"fmt"
	"strings"

	"github.com/titanchik/tg-calfit-bot/pkg/locales"
	"github.com/titanchik/tg-calfit-bot/pkg/models"
)

// goalPercent — процент выполнения нормы, не больше 100.
// Нулевая норма считается выполненной.
func goalPercent(logged, goal float64) float64 {
	if goal <= 0 {
		return 100
	}
	percent := logged / goal * 100
	if percent > 100 {
		percent = 100
	}
	return percent
}

// progressBar рисует шкалу из десяти сегментов: ▓▓▓▓▓▓▓░░░ 73.0%
func progressBar(percent float64) string {
	filled := int(percent / 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("▓", filled) + strings.Repeat("░", 10-filled) + fmt.Sprintf(" %.1f%%", percent)
}

// progressReport собирает отчёт о прогрессе за день.
func progressReport(p models.UserProfile) string {
	l := locales.Get()

	waterBar := progressBar(goalPercent(p.LoggedWaterMl, p.WaterGoalMl))
	calorieBar := progressBar(goalPercent(p.LoggedCalories, p.CalorieGoal))
	balance := p.LoggedCalories - p.BurnedCalories

	return fmt.Sprintf(l.Progress.Report,
		p.LoggedWaterMl, p.WaterGoalMl, waterBar,
		p.LoggedCalories, p.CalorieGoal, calorieBar,
		p.BurnedCalories, balance,
	)
}
