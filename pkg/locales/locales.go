package locales

import (
	_ "embed"
	"encoding/json"
	"log"
)

//go:embed locales.json
var localesJSON []byte

// Locales содержит все текстовые строки из locales.json
type Locales struct {
	Profile  Profile  `json:"profile"`
	Water    Water    `json:"water"`
	Food     Food     `json:"food"`
	Workout  Workout  `json:"workout"`
	Progress Progress `json:"progress"`
	Common   Common   `json:"common"`
}

type Profile struct {
	Start           string `json:"start"`
	AskHeight       string `json:"ask_height"`
	AskAge          string `json:"ask_age"`
	AskGender       string `json:"ask_gender"`
	AskActivity     string `json:"ask_activity"`
	AskCity         string `json:"ask_city"`
	Done            string `json:"done"`
	InvalidWeight   string `json:"invalid_weight"`
	InvalidHeight   string `json:"invalid_height"`
	InvalidAge      string `json:"invalid_age"`
	InvalidGender   string `json:"invalid_gender"`
	InvalidActivity string `json:"invalid_activity"`
	Buttons         struct {
		Genders    []string `json:"genders"`
		Activities []string `json:"activities"`
	} `json:"buttons"`
}

type Water struct {
	Ask     string `json:"ask"`
	Saved   string `json:"saved"`
	Invalid string `json:"invalid"`
}

type Food struct {
	AskName       string `json:"ask_name"`
	AskAmount     string `json:"ask_amount"`
	Saved         string `json:"saved"`
	InvalidAmount string `json:"invalid_amount"`
}

type Workout struct {
	AskType        string   `json:"ask_type"`
	AskMinutes     string   `json:"ask_minutes"`
	Saved          string   `json:"saved"`
	InvalidType    string   `json:"invalid_type"`
	InvalidMinutes string   `json:"invalid_minutes"`
	Buttons        []string `json:"buttons"`
}

type Progress struct {
	Report string `json:"report"`
}

type Common struct {
	NoProfile string `json:"no_profile"`
	Cancelled string `json:"cancelled"`
	Error     string `json:"error"`
	Unknown   string `json:"unknown"`
}

var L *Locales

func init() {
	L = &Locales{}
	if err := json.Unmarshal(localesJSON, L); err != nil {
		log.Fatalf("Не удалось распарсить locales.json: %v", err)
	}
}

// Get возвращает указатель на локали
func Get() *Locales {
	return L
}
