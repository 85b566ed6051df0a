package user

import (
	"errors"
	"gopkg.in/telebot.v3"
	"strings"
)

// Context is the identity snapshot of the sender of one inbound message.
type Context struct {
	ChatId    int64
	UserId    int64
	FirstName string
	LastName  string
	Username  string
	Timestamp int64
}

var ErrNoSender = errors.New("message has no sender")

func NewContext(tgCtx telebot.Context) (uc Context, err error) {
	sender := tgCtx.Sender()
	if sender == nil {
		err = ErrNoSender
		return
	}
	uc.UserId = sender.ID
	uc.FirstName = sender.FirstName
	uc.LastName = sender.LastName
	uc.Username = sender.Username
	if chat := tgCtx.Chat(); chat != nil {
		uc.ChatId = chat.ID
	}
	if msg := tgCtx.Message(); msg != nil {
		uc.Timestamp = msg.Unixtime
	}
	return
}

func (uc Context) FullName() string {
	return strings.TrimSpace(uc.FirstName + " " + uc.LastName)
}
