package chats

import (
	"context"
	"fmt"
	"github.com/firstbot/bot-telegram/model/location"
	"time"
)

type storageMock struct{}

// NewStorageMock returns a Storage failing to set the location of the chat -1, failing to get the one of the
// chat -2 and returning the fixed 10,3 location for any other chat.
func NewStorageMock() Storage {
	return storageMock{}
}

func (sm storageMock) Close() error {
	return nil
}

func (sm storageMock) SetLocation(ctx context.Context, id int64, coords location.Coordinates) (err error) {
	if id == -1 {
		err = fmt.Errorf("%w: failed to set the location", ErrInternal)
	}
	return
}

func (sm storageMock) GetLocation(ctx context.Context, id int64) (coords location.Coordinates, err error) {
	switch id {
	case -2:
		err = fmt.Errorf("%w: %d", ErrNotFound, id)
	default:
		coords = location.Coordinates{
			Latitude:  10,
			Longitude: 3,
		}
	}
	return
}

func (sm storageMock) DeleteStale(ctx context.Context, before time.Time) (count int64, err error) {
	return
}
