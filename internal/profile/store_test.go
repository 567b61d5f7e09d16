package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titanchik/tg-calfit-bot/pkg/models"
)

func TestGetUnknownUser(t *testing.T) {
	s := NewStore()

	_, ok := s.Get(42)
	assert.False(t, ok)
}

func TestCreateResetsProgress(t *testing.T) {
	s := NewStore()
	s.Create(1)
	s.AddWater(1, 500)
	s.AddCalories(1, 300)
	s.AddBurnedCalories(1, 100)
	s.AppendFood(1, models.FoodEntry{Name: "рис", CaloriesPer100g: 130, LoggedAt: time.Now()})

	s.Create(1)

	p, ok := s.Get(1)
	require.True(t, ok)
	assert.Zero(t, p.LoggedWaterMl)
	assert.Zero(t, p.LoggedCalories)
	assert.Zero(t, p.BurnedCalories)
	assert.Empty(t, p.FoodLog)
	assert.Empty(t, p.WorkoutLog)
	assert.False(t, p.Configured)
}

func TestAccumulators(t *testing.T) {
	s := NewStore()
	s.Create(1)

	s.AddWater(1, 300)
	s.AddWater(1, 200)
	s.AddCalories(1, 120.5)
	s.AddBurnedCalories(1, 450)
	s.IncreaseWaterGoal(1, 200)

	p, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, 500.0, p.LoggedWaterMl)
	assert.Equal(t, 120.5, p.LoggedCalories)
	assert.Equal(t, 450.0, p.BurnedCalories)
	assert.Equal(t, 200.0, p.WaterGoalMl)
}

func TestAppendLogsOrdered(t *testing.T) {
	s := NewStore()
	s.Create(1)

	s.AppendFood(1, models.FoodEntry{Name: "яблоко", CaloriesPer100g: 52})
	s.AppendFood(1, models.FoodEntry{Name: "банан", CaloriesPer100g: 89})
	s.AppendWorkout(1, models.WorkoutEntry{Type: "running", Minutes: 45, CaloriesBurned: 450})

	p, ok := s.Get(1)
	require.True(t, ok)
	require.Len(t, p.FoodLog, 2)
	assert.Equal(t, "яблоко", p.FoodLog[0].Name)
	assert.Equal(t, "банан", p.FoodLog[1].Name)
	require.Len(t, p.WorkoutLog, 1)
	assert.Equal(t, 45, p.WorkoutLog[0].Minutes)
}

func TestUpdateUnknownUser(t *testing.T) {
	s := NewStore()

	ok := s.Update(7, func(p *models.UserProfile) { p.Weight = 70 })
	assert.False(t, ok)
}
