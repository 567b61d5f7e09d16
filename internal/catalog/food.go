// Package catalog содержит статические справочники калорийности
// продуктов и энергозатрат тренировок.
package catalog

import "strings"

// DefaultFoodCalories — калорийность для неизвестного продукта, ккал/100г.
const DefaultFoodCalories = 100

// foodTable — калорийность известных продуктов, ккал/100г.
// Названия хранятся в нижнем регистре, русские и английские.
var foodTable = map[string]float64{
	"яблоко":         52,
	"apple":          52,
	"банан":          89,
	"banana":         89,
	"куриная грудка": 165,
	"chicken breast": 165,
	"рис":            130,
	"rice":           130,
	"гречка":         110,
	"buckwheat":      110,
	"овсянка":        68,
	"oatmeal":        68,
	"яйцо":           70,
	"egg":            70,
	"творог":         120,
	"cottage cheese": 120,
	"молоко":         42,
	"milk":           42,
	"кофе":           0,
	"coffee":         0,
}

// FoodCatalog отвечает на вопрос «сколько ккал в 100 г продукта».
type FoodCatalog struct {
	table map[string]float64
}

// NewFoodCatalog создаёт справочник продуктов.
func NewFoodCatalog() *FoodCatalog {
	return &FoodCatalog{table: foodTable}
}

// CaloriesPer100g возвращает калорийность продукта. Поиск не зависит
// от регистра; для неизвестного продукта возвращается значение по
// умолчанию, ошибки не бывает.
func (c *FoodCatalog) CaloriesPer100g(name string) float64 {
	key := strings.ToLower(strings.TrimSpace(name))
	if kcal, ok := c.table[key]; ok {
		return kcal
	}
	return DefaultFoodCalories
}
