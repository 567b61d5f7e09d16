// Package engine реализует диалоговый конечный автомат бота:
// пошаговую настройку профиля, логирование воды, еды и тренировок
// и отчёт о прогрессе. Пакет не знает о транспорте: на входе —
// реплика пользователя, на выходе — текст ответа.
package engine

import (
	"context"
	"sync"

	"github.com/titanchik/tg-calfit-bot/internal/catalog"
	"github.com/titanchik/tg-calfit-bot/internal/goals"
	"github.com/titanchik/tg-calfit-bot/internal/profile"
	"github.com/titanchik/tg-calfit-bot/pkg/locales"
	"github.com/titanchik/tg-calfit-bot/pkg/models"
)

// Command — команда, с которой транспорт связал реплику.
type Command string

const (
	CmdNone          Command = ""
	CmdSetProfile    Command = "set_profile"
	CmdLogWater      Command = "log_water"
	CmdLogFood       Command = "log_food"
	CmdLogWorkout    Command = "log_workout"
	CmdCancel        Command = "cancel"
	CmdCheckProgress Command = "check_progress"
)

// Turn — одна входящая реплика пользователя.
type Turn struct {
	UserID  int64
	Command Command
	Text    string
}

// Response — ответ движка: текст плюс подсказка клавиатуры.
type Response struct {
	Text          string
	Choices       []string // варианты быстрого ответа; пусто — без клавиатуры
	RemoveChoices bool     // убрать ранее предложенные варианты
}

// scratch — промежуточные данные незавершённого диалога.
// Очищается при завершении или отмене диалога.
type scratch struct {
	workoutLabel string  // выбранный тип тренировки, как его назвал пользователь
	workoutType  string  // канонический тип для справочника
	foodName     string  // продукт, ожидающий ввода граммов
	foodKcal     float64 // ккал/100г уже добавленной записи дневника
}

// dialogState — состояние диалога одного пользователя.
type dialogState struct {
	kind    models.DialogKind
	step    string
	scratch scratch
}

// Engine — диалоговый движок. Все реплики одного пользователя
// обрабатываются строго последовательно; разные пользователи —
// независимо друг от друга.
type Engine struct {
	store    *profile.Store
	foods    *catalog.FoodCatalog
	workouts *catalog.WorkoutCatalog
	calc     *goals.Calculator

	mu      sync.Mutex
	dialogs map[int64]*dialogState
	locks   map[int64]*sync.Mutex
}

// New создаёт движок поверх хранилища, справочников и калькулятора норм.
func New(store *profile.Store, foods *catalog.FoodCatalog, workouts *catalog.WorkoutCatalog, calc *goals.Calculator) *Engine {
	return &Engine{
		store:    store,
		foods:    foods,
		workouts: workouts,
		calc:     calc,
		dialogs:  make(map[int64]*dialogState),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// HandleTurn обрабатывает одну реплику и возвращает ответ.
func (e *Engine) HandleTurn(ctx context.Context, t Turn) Response {
	lock := e.userLock(t.UserID)
	lock.Lock()
	defer lock.Unlock()

	st := e.dialog(t.UserID)

	if t.Command != CmdNone {
		return e.handleCommand(ctx, t, st)
	}
	return e.step(ctx, t, st)
}

// handleCommand начинает диалог или выполняет одношаговую команду.
// Любая команда начала диалога бросает незавершённый диалог:
// его промежуточные данные пропадают, профиль не меняется.
func (e *Engine) handleCommand(ctx context.Context, t Turn, st *dialogState) Response {
	l := locales.Get()

	switch t.Command {
	case CmdSetProfile:
		e.store.Create(t.UserID)
		st.set(models.DialogProfileSetup, models.StepWeight)
		return Response{Text: l.Profile.Start, RemoveChoices: true}

	case CmdLogWater:
		if resp, ok := e.requireProfile(t.UserID, st); !ok {
			return resp
		}
		st.set(models.DialogLogWater, models.StepWaterAmount)
		return Response{Text: l.Water.Ask, RemoveChoices: true}

	case CmdLogFood:
		if resp, ok := e.requireProfile(t.UserID, st); !ok {
			return resp
		}
		st.set(models.DialogLogFood, models.StepFoodName)
		return Response{Text: l.Food.AskName, RemoveChoices: true}

	case CmdLogWorkout:
		if resp, ok := e.requireProfile(t.UserID, st); !ok {
			return resp
		}
		st.set(models.DialogLogWorkout, models.StepWorkoutType)
		return Response{Text: l.Workout.AskType, Choices: l.Workout.Buttons}

	case CmdCancel:
		st.clear()
		return Response{Text: l.Common.Cancelled, RemoveChoices: true}

	case CmdCheckProgress:
		// Одношаговая команда: текущий диалог не трогаем.
		p, ok := e.store.Get(t.UserID)
		if !ok || !p.Configured {
			return Response{Text: l.Common.NoProfile}
		}
		return Response{Text: progressReport(p)}
	}

	return Response{Text: l.Common.Unknown}
}

// step маршрутизирует реплику в обработчик текущего шага диалога.
func (e *Engine) step(ctx context.Context, t Turn, st *dialogState) Response {
	switch st.kind {
	case models.DialogProfileSetup:
		return e.stepProfileSetup(ctx, t, st)
	case models.DialogLogWater:
		return e.stepLogWater(t, st)
	case models.DialogLogFood:
		return e.stepLogFood(t, st)
	case models.DialogLogWorkout:
		return e.stepLogWorkout(t, st)
	}
	return Response{Text: locales.Get().Common.Unknown}
}

// requireProfile проверяет, что профиль настроен. Если нет —
// диалог не начинается, старый бросается.
func (e *Engine) requireProfile(userID int64, st *dialogState) (Response, bool) {
	p, ok := e.store.Get(userID)
	if !ok || !p.Configured {
		st.clear()
		return Response{Text: locales.Get().Common.NoProfile, RemoveChoices: true}, false
	}
	return Response{}, true
}

func (e *Engine) userLock(userID int64) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[userID] = lock
	}
	return lock
}

func (e *Engine) dialog(userID int64) *dialogState {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.dialogs[userID]
	if !ok {
		st = &dialogState{}
		e.dialogs[userID] = st
	}
	return st
}

func (s *dialogState) set(kind models.DialogKind, step string) {
	s.kind = kind
	s.step = step
	s.scratch = scratch{}
}

func (s *dialogState) clear() {
	s.set(models.DialogNone, models.StepNone)
}
