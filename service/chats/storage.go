package chats

import (
	"context"
	"github.com/firstbot/bot-telegram/model/location"
	"io"
	"time"
)

type Storage interface {
	io.Closer
	SetLocation(ctx context.Context, id int64, coords location.Coordinates) (err error)
	GetLocation(ctx context.Context, id int64) (coords location.Coordinates, err error)
	DeleteStale(ctx context.Context, before time.Time) (count int64, err error)
}
