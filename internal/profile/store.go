// Package profile хранит профили пользователей в памяти процесса.
// Персистентности нет: при перезапуске все данные теряются.
package profile

import (
	"sync"

	"github.com/titanchik/tg-calfit-bot/pkg/models"
)

// Store — потокобезопасное хранилище профилей по ID пользователя.
type Store struct {
	mu    sync.RWMutex
	users map[int64]*models.UserProfile
}

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	return &Store{users: make(map[int64]*models.UserProfile)}
}

// Create создаёт профиль заново: все накопители обнуляются, дневники
// очищаются. Используется как идемпотентное начало настройки профиля,
// в том числе для повторной настройки существующего пользователя.
func (s *Store) Create(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = &models.UserProfile{}
}

// Get возвращает копию профиля пользователя. Дневники в копии
// разделяют память с хранилищем и предназначены только для чтения.
func (s *Store) Get(userID int64) (models.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.users[userID]
	if !ok {
		return models.UserProfile{}, false
	}
	return *p, true
}

// Update изменяет профиль под блокировкой. Возвращает false,
// если профиль не существует.
func (s *Store) Update(userID int64, fn func(*models.UserProfile)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.users[userID]
	if !ok {
		return false
	}
	fn(p)
	return true
}

// AddWater добавляет выпитую воду, мл.
func (s *Store) AddWater(userID int64, ml float64) {
	s.Update(userID, func(p *models.UserProfile) { p.LoggedWaterMl += ml })
}

// AddCalories добавляет съеденные калории.
func (s *Store) AddCalories(userID int64, kcal float64) {
	s.Update(userID, func(p *models.UserProfile) { p.LoggedCalories += kcal })
}

// AddBurnedCalories добавляет сожжённые калории.
func (s *Store) AddBurnedCalories(userID int64, kcal float64) {
	s.Update(userID, func(p *models.UserProfile) { p.BurnedCalories += kcal })
}

// IncreaseWaterGoal увеличивает дневную норму воды, мл.
func (s *Store) IncreaseWaterGoal(userID int64, ml float64) {
	s.Update(userID, func(p *models.UserProfile) { p.WaterGoalMl += ml })
}

// AppendFood дописывает запись в дневник питания.
func (s *Store) AppendFood(userID int64, e models.FoodEntry) {
	s.Update(userID, func(p *models.UserProfile) { p.FoodLog = append(p.FoodLog, e) })
}

// AppendWorkout дописывает запись в дневник тренировок.
func (s *Store) AppendWorkout(userID int64, e models.WorkoutEntry) {
	s.Update(userID, func(p *models.UserProfile) { p.WorkoutLog = append(p.WorkoutLog, e) })
}
