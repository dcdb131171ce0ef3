package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"uz", Uzbek, true},
		{"RU", Russian, true},
		{" en ", English, true},
		{"de", Default, false},
		{"", Default, false},
	}
	for _, testCase := range tests {
		t.Run(testCase.in, func(t *testing.T) {
			got, ok := Parse(testCase.in)
			assert.Equal(t, testCase.want, got)
			assert.Equal(t, testCase.ok, ok)
		})
	}
}

func TestText_GetFallsBack(t *testing.T) {
	text := Text{Uz: "Osh", Ru: "", En: "Pilaf"}

	assert.Equal(t, "Osh", text.Get(Uzbek))
	assert.Equal(t, "Pilaf", text.Get(English))
	assert.Equal(t, "Osh", text.Get(Russian))
	assert.Equal(t, "", Text{}.Get(Russian))
}

func TestText_Complete(t *testing.T) {
	assert.True(t, Text{Uz: "a", Ru: "b", En: "c"}.Complete())
	assert.False(t, Text{Uz: "a", Ru: " ", En: "c"}.Complete())
	assert.True(t, Text{}.IsZero())
}
