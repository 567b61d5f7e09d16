package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/titanchik/tg-calfit-bot/pkg/models"
)

func TestParseWeight(t *testing.T) {
	cases := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"70", 70, true},
		{"75,5", 75.5, true},
		{"75 кг", 75, true},
		{"80kg", 80, true},
		{"/70", 70, true},
		{"300", 300, true},
		{"300.1", 0, false},
		{"0", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		got, ok := parseWeight(c.input)
		assert.Equal(t, c.ok, ok, "input %q", c.input)
		if c.ok {
			assert.Equal(t, c.want, got, "input %q", c.input)
		}
	}
}

func TestParseHeight(t *testing.T) {
	cases := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"175", 175, true},
		{"175 см", 175, true},
		{"180cm", 180, true},
		{"168,5", 168.5, true},
		{"250", 250, true},
		{"251", 0, false},
		{"-170", 0, false},
		{"высокий", 0, false},
	}

	for _, c := range cases {
		got, ok := parseHeight(c.input)
		assert.Equal(t, c.ok, ok, "input %q", c.input)
		if c.ok {
			assert.Equal(t, c.want, got, "input %q", c.input)
		}
	}
}

func TestParseAge(t *testing.T) {
	_, ok := parseAge("25")
	assert.True(t, ok)

	for _, bad := range []string{"0", "-1", "121", "25.5", "двадцать"} {
		_, ok := parseAge(bad)
		assert.False(t, ok, "input %q", bad)
	}
}

func TestParseGender(t *testing.T) {
	g, ok := parseGender("Мужской")
	assert.True(t, ok)
	assert.Equal(t, models.GenderMale, g)

	g, ok = parseGender("ЖЕНСКИЙ")
	assert.True(t, ok)
	assert.Equal(t, models.GenderFemale, g)

	g, ok = parseGender("female")
	assert.True(t, ok)
	assert.Equal(t, models.GenderFemale, g)

	_, ok = parseGender("другое")
	assert.False(t, ok)
}

func TestParseActivity(t *testing.T) {
	a, ok := parseActivity("Средний")
	assert.True(t, ok)
	assert.Equal(t, models.ActivityMedium, a)

	a, ok = parseActivity("high")
	assert.True(t, ok)
	assert.Equal(t, models.ActivityHigh, a)

	_, ok = parseActivity("иногда")
	assert.False(t, ok)
}
