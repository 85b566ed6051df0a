package service

import (
	"errors"
	"gopkg.in/telebot.v3"
)

var errSendMock = errors.New("send failed")

type sent struct {
	what any
	opts []any
}

// tgCtxMock implements the telebot.Context methods the handlers use, the rest panic on the nil embedded interface.
type tgCtxMock struct {
	telebot.Context
	msg       *telebot.Message
	sent      []sent
	failPhoto bool
	failText  bool
	vals      map[string]any
}

func newTgCtxMock(msg *telebot.Message) *tgCtxMock {
	return &tgCtxMock{
		msg:  msg,
		vals: map[string]any{},
	}
}

func (m *tgCtxMock) Update() telebot.Update {
	return telebot.Update{
		ID:      1,
		Message: m.msg,
	}
}

func (m *tgCtxMock) Message() *telebot.Message {
	return m.msg
}

func (m *tgCtxMock) Sender() *telebot.User {
	if m.msg == nil {
		return nil
	}
	return m.msg.Sender
}

func (m *tgCtxMock) Chat() *telebot.Chat {
	if m.msg == nil {
		return nil
	}
	return m.msg.Chat
}

func (m *tgCtxMock) Text() string {
	if m.msg == nil {
		return ""
	}
	return m.msg.Text
}

func (m *tgCtxMock) Set(key string, val any) {
	m.vals[key] = val
}

func (m *tgCtxMock) Get(key string) any {
	return m.vals[key]
}

func (m *tgCtxMock) Send(what any, opts ...any) (err error) {
	switch what.(type) {
	case *telebot.Photo:
		if m.failPhoto {
			err = errSendMock
		}
	case string:
		if m.failText {
			err = errSendMock
		}
	}
	if err == nil {
		m.sent = append(m.sent, sent{what: what, opts: opts})
	}
	return
}

func (m *tgCtxMock) texts() (txts []string) {
	for _, s := range m.sent {
		if txt, ok := s.what.(string); ok {
			txts = append(txts, txt)
		}
	}
	return
}

func newTextMessage(txt string) *telebot.Message {
	return &telebot.Message{
		ID:       100,
		Unixtime: 1718000000,
		Text:     txt,
		Sender: &telebot.User{
			ID:        12345,
			FirstName: "John",
			LastName:  "Doe",
			Username:  "johndoe",
		},
		Chat: &telebot.Chat{
			ID:   12345,
			Type: telebot.ChatPrivate,
		},
	}
}
