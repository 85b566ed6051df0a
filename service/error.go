package service

import (
	"gopkg.in/telebot.v3"
)

const MsgErrGeneric = "Что-то пошло не так, попробуйте ещё раз."

// ErrorHandlerFunc answers with a fixed text when the handler fails, the error itself is only returned
// for logging and never shown to the user.
func ErrorHandlerFunc(h telebot.HandlerFunc, kbd *telebot.ReplyMarkup) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		err = h(tgCtx)
		if err != nil {
			_ = tgCtx.Send(MsgErrGeneric, kbd)
		}
		return
	}
}
