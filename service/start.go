package service

import (
	"fmt"
	"github.com/firstbot/bot-telegram/model/user"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/telebot.v3"
)

const fmtMsgStart = "Привет %s, спасибо, что присоединился!"

func StartHandlerFunc(kbd *telebot.ReplyMarkup, htmlPolicy *bluemonday.Policy) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		var uc user.Context
		uc, err = user.NewContext(tgCtx)
		if err == nil {
			err = tgCtx.Send(fmt.Sprintf(fmtMsgStart, htmlPolicy.Sanitize(uc.Username)), kbd, telebot.ModeHTML)
		}
		return
	}
}

func MyIdHandlerFunc(tgCtx telebot.Context) (err error) {
	var uc user.Context
	uc, err = user.NewContext(tgCtx)
	if err == nil {
		err = SendMyId(tgCtx, uc)
	}
	return
}
