package service

import (
	"context"
	"github.com/firstbot/bot-telegram/model/location"
	"github.com/firstbot/bot-telegram/service/chats"
	"github.com/firstbot/bot-telegram/service/weather"
	"gopkg.in/telebot.v3"
)

const MsgLocationMissing = "Локация не получена, попробуйте снова отправить координаты."
const MsgErrWeather = "Ошибка при получении данных о погоде."
const MsgMenu = "😎"

// LocationHandler remembers the shared location of the chat and replies with the weather there.
type LocationHandler struct {
	ChatStor  chats.Storage
	Formatter weather.Formatter
	Menu      *telebot.ReplyMarkup
}

func (h LocationHandler) Handle(tgCtx telebot.Context) (err error) {
	msg := tgCtx.Message()
	if msg == nil || msg.Location == nil {
		err = tgCtx.Send(MsgLocationMissing, telebot.ModeHTML)
		return
	}
	coords := location.NewCoordinates(msg.Location.Lat, msg.Location.Lng)
	var txt string
	switch coords.Validate() {
	case nil:
		txt, err = h.report(context.TODO(), tgCtx.Chat(), coords)
	default:
		txt = MsgErrWeather
	}
	if err == nil {
		err = tgCtx.Send(txt, telebot.ModeHTML)
	}
	if err == nil {
		err = tgCtx.Send(MsgMenu, h.Menu)
	}
	return
}

func (h LocationHandler) report(ctx context.Context, chat *telebot.Chat, coords location.Coordinates) (txt string, err error) {
	if chat != nil {
		err = h.ChatStor.SetLocation(ctx, chat.ID, coords)
		if err == nil {
			coords, err = h.ChatStor.GetLocation(ctx, chat.ID)
		}
	}
	if err == nil {
		var errReport error
		txt, errReport = h.Formatter.Report(ctx, coords)
		if errReport != nil {
			txt = MsgErrWeather
		}
	}
	return
}
