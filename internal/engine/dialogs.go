package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/titanchik/tg-calfit-bot/pkg/locales"
	"github.com/titanchik/tg-calfit-bot/pkg/models"
)

// stepProfileSetup ведёт пользователя по шагам настройки профиля:
// вес → рост → возраст → пол → активность → город. Невалидный ввод
// оставляет диалог на том же шаге и ничего не записывает в профиль.
func (e *Engine) stepProfileSetup(ctx context.Context, t Turn, st *dialogState) Response {
	l := locales.Get()

	switch st.step {
	case models.StepWeight:
		w, ok := parseWeight(t.Text)
		if !ok {
			return Response{Text: l.Profile.InvalidWeight}
		}
		e.store.Update(t.UserID, func(p *models.UserProfile) { p.Weight = w })
		st.step = models.StepHeight
		return Response{Text: l.Profile.AskHeight}

	case models.StepHeight:
		h, ok := parseHeight(t.Text)
		if !ok {
			return Response{Text: l.Profile.InvalidHeight}
		}
		e.store.Update(t.UserID, func(p *models.UserProfile) { p.Height = h })
		st.step = models.StepAge
		return Response{Text: l.Profile.AskAge}

	case models.StepAge:
		a, ok := parseAge(t.Text)
		if !ok {
			return Response{Text: l.Profile.InvalidAge}
		}
		e.store.Update(t.UserID, func(p *models.UserProfile) { p.Age = a })
		st.step = models.StepGender
		return Response{Text: l.Profile.AskGender, Choices: l.Profile.Buttons.Genders}

	case models.StepGender:
		g, ok := parseGender(t.Text)
		if !ok {
			return Response{Text: l.Profile.InvalidGender, Choices: l.Profile.Buttons.Genders}
		}
		e.store.Update(t.UserID, func(p *models.UserProfile) { p.Gender = g })
		st.step = models.StepActivity
		return Response{Text: l.Profile.AskActivity, Choices: l.Profile.Buttons.Activities}

	case models.StepActivity:
		a, ok := parseActivity(t.Text)
		if !ok {
			return Response{Text: l.Profile.InvalidActivity, Choices: l.Profile.Buttons.Activities}
		}
		e.store.Update(t.UserID, func(p *models.UserProfile) { p.ActivityLevel = a })
		st.step = models.StepCity
		return Response{Text: l.Profile.AskCity, RemoveChoices: true}

	case models.StepCity:
		return e.finishProfileSetup(ctx, t, st)
	}

	return Response{Text: l.Common.Unknown}
}

// finishProfileSetup принимает город как есть, вычисляет нормы
// и помечает профиль настроенным.
func (e *Engine) finishProfileSetup(ctx context.Context, t Turn, st *dialogState) Response {
	l := locales.Get()

	e.store.Update(t.UserID, func(p *models.UserProfile) { p.City = t.Text })

	p, _ := e.store.Get(t.UserID)
	norms := e.calc.Compute(ctx, p)

	e.store.Update(t.UserID, func(p *models.UserProfile) {
		p.WaterGoalMl = norms.WaterMl
		p.CalorieGoal = norms.Calories
		p.Configured = true
	})

	st.clear()
	return Response{
		Text:          fmt.Sprintf(l.Profile.Done, norms.WaterMl, norms.Calories),
		RemoveChoices: true,
	}
}

// stepLogWater — единственный шаг диалога воды: положительное целое, мл.
func (e *Engine) stepLogWater(t Turn, st *dialogState) Response {
	l := locales.Get()

	amount, ok := parsePositiveInt(t.Text)
	if !ok {
		return Response{Text: l.Water.Invalid}
	}

	e.store.AddWater(t.UserID, float64(amount))

	p, _ := e.store.Get(t.UserID)
	remaining := p.WaterGoalMl - p.LoggedWaterMl
	if remaining < 0 {
		remaining = 0
	}

	st.clear()
	return Response{Text: fmt.Sprintf(l.Water.Saved, amount, remaining)}
}

// stepLogFood — два шага: название продукта, затем граммы.
func (e *Engine) stepLogFood(t Turn, st *dialogState) Response {
	l := locales.Get()

	switch st.step {
	case models.StepFoodName:
		name := strings.TrimSpace(t.Text)
		kcal := e.foods.CaloriesPer100g(name)

		e.store.AppendFood(t.UserID, models.FoodEntry{
			Name:            name,
			CaloriesPer100g: kcal,
			LoggedAt:        time.Now(),
		})

		st.scratch.foodName = name
		st.scratch.foodKcal = kcal
		st.step = models.StepFoodAmount
		return Response{Text: fmt.Sprintf(l.Food.AskAmount, name)}

	case models.StepFoodAmount:
		amount, ok := parsePositiveFloat(t.Text)
		if !ok {
			// Запись дневника уже добавлена; её ккал/100г переиспользуется.
			return Response{Text: l.Food.InvalidAmount}
		}

		kcal := st.scratch.foodKcal * amount / 100
		e.store.AddCalories(t.UserID, kcal)

		p, _ := e.store.Get(t.UserID)
		resp := fmt.Sprintf(l.Food.Saved, amount, st.scratch.foodName, kcal, p.LoggedCalories)

		st.clear()
		return Response{Text: resp}
	}

	return Response{Text: l.Common.Unknown}
}

// stepLogWorkout — два шага: тип тренировки, затем минуты.
func (e *Engine) stepLogWorkout(t Turn, st *dialogState) Response {
	l := locales.Get()

	switch st.step {
	case models.StepWorkoutType:
		typ, ok := e.workouts.Normalize(t.Text)
		if !ok {
			return Response{Text: l.Workout.InvalidType, Choices: l.Workout.Buttons}
		}

		st.scratch.workoutLabel = strings.TrimSpace(t.Text)
		st.scratch.workoutType = typ
		st.step = models.StepWorkoutMinutes
		return Response{
			Text:          fmt.Sprintf(l.Workout.AskMinutes, strings.ToLower(st.scratch.workoutLabel)),
			RemoveChoices: true,
		}

	case models.StepWorkoutMinutes:
		minutes, ok := parsePositiveInt(t.Text)
		if !ok {
			return Response{Text: l.Workout.InvalidMinutes}
		}

		burned := float64(minutes) * e.workouts.RatePerMinute(st.scratch.workoutType)
		waterExtra := float64(minutes/30) * 200

		e.store.AddBurnedCalories(t.UserID, burned)
		e.store.IncreaseWaterGoal(t.UserID, waterExtra)
		e.store.AppendWorkout(t.UserID, models.WorkoutEntry{
			Type:           st.scratch.workoutLabel,
			Minutes:        minutes,
			CaloriesBurned: burned,
			LoggedAt:       time.Now(),
		})

		label := st.scratch.workoutLabel
		st.clear()
		return Response{Text: fmt.Sprintf(l.Workout.Saved, label, minutes, burned, waterExtra)}
	}

	return Response{Text: l.Common.Unknown}
}
