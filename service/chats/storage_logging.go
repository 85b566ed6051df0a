package chats

import (
	"context"
	"fmt"
	"github.com/firstbot/bot-telegram/model/location"
	"github.com/firstbot/bot-telegram/util"
	"log/slog"
	"time"
)

type storageLogging struct {
	stor Storage
	log  *slog.Logger
}

func NewStorageLogging(stor Storage, log *slog.Logger) Storage {
	return storageLogging{
		stor: stor,
		log:  log,
	}
}

func (sl storageLogging) Close() (err error) {
	err = sl.stor.Close()
	sl.log.Log(context.TODO(), util.LogLevel(err), fmt.Sprintf("chats.Close(): err=%s", err))
	return
}

func (sl storageLogging) SetLocation(ctx context.Context, id int64, coords location.Coordinates) (err error) {
	err = sl.stor.SetLocation(ctx, id, coords)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("chats.SetLocation(%d, %s): err=%s", id, coords, err))
	return
}

func (sl storageLogging) GetLocation(ctx context.Context, id int64) (coords location.Coordinates, err error) {
	coords, err = sl.stor.GetLocation(ctx, id)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("chats.GetLocation(%d): %s, err=%s", id, coords, err))
	return
}

func (sl storageLogging) DeleteStale(ctx context.Context, before time.Time) (count int64, err error) {
	count, err = sl.stor.DeleteStale(ctx, before)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("chats.DeleteStale(%s): %d, err=%s", before, count, err))
	return
}
