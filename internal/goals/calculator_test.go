package goals

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/titanchik/tg-calfit-bot/pkg/models"
)

// fakeWeather — детерминированный провайдер температуры для тестов.
type fakeWeather struct {
	temp  float64
	known bool
}

func (f fakeWeather) Temperature(_ context.Context, _ string) (float64, bool) {
	return f.temp, f.known
}

func TestWaterGoalUnknownTemperature(t *testing.T) {
	for _, w := range []float64{1, 55.5, 70, 120, 300} {
		assert.Equal(t, w*30, WaterGoal(w, 0, false), "weight %v", w)
	}
}

func TestWaterGoalHotDay(t *testing.T) {
	assert.Equal(t, 70*30.0+500, WaterGoal(70, 25.1, true))
	assert.Equal(t, 70*30.0+500, WaterGoal(70, 35, true))
	assert.Equal(t, 70*30.0, WaterGoal(70, 25, true))
	assert.Equal(t, 70*30.0, WaterGoal(70, 10, true))
	assert.Equal(t, 70*30.0, WaterGoal(70, 30, false))
}

func TestCalorieGoalMifflin(t *testing.T) {
	p := models.UserProfile{
		Weight:        70,
		Height:        175,
		Age:           25,
		Gender:        models.GenderMale,
		ActivityLevel: models.ActivityMedium,
	}

	// 10*70 + 6.25*175 - 5*25 + 5 = 1673.75; 1673.75 * 1.55 = 2594.3125
	assert.InDelta(t, 2594.3125, CalorieGoal(p), 1e-9)
}

func TestCalorieGoalFemale(t *testing.T) {
	p := models.UserProfile{
		Weight:        60,
		Height:        165,
		Age:           30,
		Gender:        models.GenderFemale,
		ActivityLevel: models.ActivityLow,
	}

	// (10*60 + 6.25*165 - 5*30 - 161) * 1.2 = (600 + 1031.25 - 150 - 161) * 1.2
	assert.InDelta(t, 1320.25*1.2, CalorieGoal(p), 1e-9)
}

func TestCalorieGoalUnknownActivityFallsBack(t *testing.T) {
	p := models.UserProfile{Weight: 70, Height: 175, Age: 25, Gender: models.GenderMale}

	assert.InDelta(t, 1673.75*1.2, CalorieGoal(p), 1e-9)
}

func TestComputeUsesWeather(t *testing.T) {
	p := models.UserProfile{
		Weight:        70,
		Height:        175,
		Age:           25,
		Gender:        models.GenderMale,
		ActivityLevel: models.ActivityMedium,
		City:          "Сочи",
	}

	hot := NewCalculator(fakeWeather{temp: 30, known: true}).Compute(context.Background(), p)
	assert.Equal(t, 2600.0, hot.WaterMl)
	assert.InDelta(t, 2594.3125, hot.Calories, 1e-9)

	unknown := NewCalculator(fakeWeather{known: false}).Compute(context.Background(), p)
	assert.Equal(t, 2100.0, unknown.WaterMl)
}
