package service

import (
	"context"
	"fmt"
	"github.com/firstbot/bot-telegram/model/user"
	"github.com/firstbot/bot-telegram/service/avatar"
	"github.com/firstbot/bot-telegram/service/cats"
	"github.com/firstbot/bot-telegram/service/random"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/telebot.v3"
)

const fmtMsgMyId = "Ваш Telegram user ID: %d"
const fmtMsgGreeting = "%s, как твои дела?\nТвои данные:\nID: %d\nЮзернейм: @%s"
const MsgLocationRequest = "Пожалуйста, поделитесь своей геолокацией:"

// RootHandler answers the text messages, one command per message.
type RootHandler struct {
	Avatar     avatar.Synthesizer
	Cats       cats.Resolver
	Random     random.Resolver
	HtmlPolicy *bluemonday.Policy
}

func (h RootHandler) Handle(tgCtx telebot.Context) (err error) {
	var uc user.Context
	uc, err = user.NewContext(tgCtx)
	if err != nil {
		return
	}
	switch Classify(tgCtx.Text()) {
	case CmdAvatar:
		err = h.sendAvatar(tgCtx, uc)
	case CmdMyId:
		err = SendMyId(tgCtx, uc)
	case CmdWeather:
		err = tgCtx.Send(MsgLocationRequest, MakeLocationRequest(), telebot.ModeHTML)
	case CmdCatPhoto:
		err = h.sendCatPhoto(tgCtx)
	case CmdRandom:
		err = tgCtx.Send(h.Random.GetRandomDigit(context.TODO()), telebot.ModeHTML)
	default:
		err = tgCtx.Send(h.greeting(uc), telebot.ModeHTML)
	}
	return
}

func (h RootHandler) sendAvatar(tgCtx telebot.Context, uc user.Context) (err error) {
	photo := &telebot.Photo{
		File: telebot.FromURL(h.Avatar.Url(uc)),
	}
	if tgCtx.Send(photo) != nil {
		err = tgCtx.Send(avatar.MsgErrDelivery, telebot.ModeHTML)
	}
	return
}

func (h RootHandler) sendCatPhoto(tgCtx telebot.Context) (err error) {
	u, ok := h.Cats.GetCatPhoto(context.TODO())
	switch ok {
	case true:
		err = tgCtx.Send(&telebot.Photo{
			File:    telebot.FromURL(u),
			Caption: cats.Caption,
		})
	default:
		err = tgCtx.Send(cats.MsgNotFound, telebot.ModeHTML)
	}
	return
}

func (h RootHandler) greeting(uc user.Context) string {
	return fmt.Sprintf(fmtMsgGreeting, h.HtmlPolicy.Sanitize(uc.FirstName), uc.UserId, h.HtmlPolicy.Sanitize(uc.Username))
}

func SendMyId(tgCtx telebot.Context, uc user.Context) error {
	return tgCtx.Send(fmt.Sprintf(fmtMsgMyId, uc.UserId), telebot.ModeHTML)
}
