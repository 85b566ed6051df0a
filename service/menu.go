package service

import (
	"gopkg.in/telebot.v3"
)

const LabelShareLocation = "Отправить координаты 📍"

var btnCatPhoto = telebot.Btn{
	Text: LabelCatPhoto,
}

var btnAvatar = telebot.Btn{
	Text: LabelAvatar,
}

var btnMyId = telebot.Btn{
	Text: LabelMyId,
}

var btnRandom = telebot.Btn{
	Text: LabelRandom,
}

var btnWeather = telebot.Btn{
	Text: LabelWeather,
}

var btnShareLocation = telebot.Btn{
	Text:     LabelShareLocation,
	Location: true,
}

func MakeMainMenu() (kbd *telebot.ReplyMarkup) {
	kbd = &telebot.ReplyMarkup{
		ResizeKeyboard: true,
	}
	kbd.Reply(
		kbd.Row(btnCatPhoto, btnAvatar),
		kbd.Row(btnMyId, btnRandom),
		kbd.Row(btnWeather),
	)
	return
}

func MakeLocationRequest() (kbd *telebot.ReplyMarkup) {
	kbd = &telebot.ReplyMarkup{
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
	kbd.Reply(
		kbd.Row(btnShareLocation),
	)
	return
}
