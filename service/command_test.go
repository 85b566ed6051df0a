package service

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := map[string]Command{
		"Сгенерируй аватар":     CmdAvatar,
		"Мой ID":                CmdMyId,
		"Погода сегодня":        CmdWeather,
		"Фото котика":           CmdCatPhoto,
		"Рандомное число":       CmdRandom,
		"рандомное число":       CmdRandom,
		"РАНДОМ":                CmdRandom,
		"случайное":             CmdRandom,
		"Случайное число, плиз": CmdRandom,
		"":                  CmdGreeting,
		"привет":            CmdGreeting,
		"сгенерируй аватар": CmdGreeting,
		"Мой ID ":           CmdGreeting,
		"мой рандом":        CmdGreeting,
		"Погода сегодня вечером": CmdGreeting,
	}
	for in, out := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, out, Classify(in))
		})
	}
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "CmdAvatar", CmdAvatar.String())
	assert.Equal(t, "CmdGreeting", CmdGreeting.String())
}
