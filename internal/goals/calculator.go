// Package goals вычисляет дневные нормы воды и калорий по биометрии
// пользователя и текущей погоде.
package goals

import (
	"context"

	"github.com/titanchik/tg-calfit-bot/pkg/models"
)

const (
	waterPerKg   = 30  // мл на кг веса
	hotDayBonus  = 500 // мл при жаре
	hotThreshold = 25  // °C
)

// activityFactors — множители нормы калорий по уровню активности.
var activityFactors = map[models.ActivityLevel]float64{
	models.ActivityLow:    1.2,
	models.ActivityMedium: 1.55,
	models.ActivityHigh:   1.9,
}

// TemperatureProvider возвращает текущую температуру в городе.
// false означает «температура неизвестна» — по любой причине.
type TemperatureProvider interface {
	Temperature(ctx context.Context, city string) (float64, bool)
}

// Goals — вычисленные дневные нормы.
type Goals struct {
	WaterMl  float64
	Calories float64
}

// Calculator вычисляет нормы. Погода приходит через внедрённый
// провайдер; его отказ никогда не становится ошибкой расчёта.
type Calculator struct {
	weather TemperatureProvider
}

// NewCalculator создаёт калькулятор с провайдером погоды.
func NewCalculator(weather TemperatureProvider) *Calculator {
	return &Calculator{weather: weather}
}

// Compute вычисляет нормы для профиля. Температура запрашивается
// по городу профиля; неизвестная температура считается прохладной.
func (c *Calculator) Compute(ctx context.Context, p models.UserProfile) Goals {
	temp, known := c.weather.Temperature(ctx, p.City)
	return Goals{
		WaterMl:  WaterGoal(p.Weight, temp, known),
		Calories: CalorieGoal(p),
	}
}

// WaterGoal — норма воды: 30 мл на кг веса плюс 500 мл в жару (> 25°C).
// Активность здесь не учитывается: вода за тренировки добавляется
// отдельно при их логировании.
func WaterGoal(weightKg, tempC float64, tempKnown bool) float64 {
	total := weightKg * waterPerKg
	if tempKnown && tempC > hotThreshold {
		total += hotDayBonus
	}
	return total
}

// CalorieGoal — норма калорий по формуле Миффлина-Сан Жеора
// с множителем активности (неизвестный уровень считается низким).
func CalorieGoal(p models.UserProfile) float64 {
	base := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == models.GenderMale {
		base += 5
	} else {
		base -= 161
	}

	factor, ok := activityFactors[p.ActivityLevel]
	if !ok {
		factor = activityFactors[models.ActivityLow]
	}
	return base * factor
}
