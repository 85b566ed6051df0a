package chats

import (
	"github.com/firstbot/bot-telegram/model/location"
	"time"
)

// Chat is the transient session of one chat, it lives only in memory.
type Chat struct {
	Id       int64
	Location location.Coordinates
	Updated  time.Time
}
