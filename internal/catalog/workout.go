package catalog

import "strings"

// DefaultWorkoutRate — расход для неизвестного типа тренировки, ккал/мин.
const DefaultWorkoutRate = 5

// workoutRates — расход калорий по каноническому типу тренировки, ккал/мин.
var workoutRates = map[string]float64{
	"running":  10,
	"walking":  5,
	"cycling":  8,
	"swimming": 7,
	"strength": 6,
	"yoga":     3,
}

// workoutAliases — соответствие пользовательских названий каноническим типам.
var workoutAliases = map[string]string{
	"бег":       "running",
	"running":   "running",
	"ходьба":    "walking",
	"walking":   "walking",
	"велосипед": "cycling",
	"cycling":   "cycling",
	"плавание":  "swimming",
	"swimming":  "swimming",
	"силовая":   "strength",
	"strength":  "strength",
	"йога":      "yoga",
	"yoga":      "yoga",
}

// WorkoutCatalog отвечает на вопрос «сколько ккал в минуту сжигает тренировка».
type WorkoutCatalog struct {
	rates   map[string]float64
	aliases map[string]string
}

// NewWorkoutCatalog создаёт справочник тренировок.
func NewWorkoutCatalog() *WorkoutCatalog {
	return &WorkoutCatalog{rates: workoutRates, aliases: workoutAliases}
}

// Normalize приводит название тренировки к каноническому типу.
// Возвращает false, если название не входит в шесть поддерживаемых.
func (c *WorkoutCatalog) Normalize(label string) (string, bool) {
	typ, ok := c.aliases[strings.ToLower(strings.TrimSpace(label))]
	return typ, ok
}

// RatePerMinute возвращает расход калорий для типа тренировки.
// Для неизвестного типа возвращается значение по умолчанию.
func (c *WorkoutCatalog) RatePerMinute(typ string) float64 {
	if rate, ok := c.rates[strings.ToLower(strings.TrimSpace(typ))]; ok {
		return rate
	}
	return DefaultWorkoutRate
}
