package chats

import (
	"context"
	"fmt"
	"github.com/firstbot/bot-telegram/model/location"
	"sync"
	"time"
)

type storageMemory struct {
	lock  *sync.Mutex
	chats map[int64]Chat
	now   func() time.Time
}

func NewStorageMemory() Storage {
	return storageMemory{
		lock:  &sync.Mutex{},
		chats: map[int64]Chat{},
		now:   time.Now,
	}
}

func (sm storageMemory) Close() error {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	clear(sm.chats)
	return nil
}

func (sm storageMemory) SetLocation(ctx context.Context, id int64, coords location.Coordinates) (err error) {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	sm.chats[id] = Chat{
		Id:       id,
		Location: coords,
		Updated:  sm.now().UTC(),
	}
	return
}

func (sm storageMemory) GetLocation(ctx context.Context, id int64) (coords location.Coordinates, err error) {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	c, ok := sm.chats[id]
	switch ok {
	case true:
		coords = c.Location
	default:
		err = fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return
}

func (sm storageMemory) DeleteStale(ctx context.Context, before time.Time) (count int64, err error) {
	sm.lock.Lock()
	defer sm.lock.Unlock()
	for id, c := range sm.chats {
		if c.Updated.Before(before) {
			delete(sm.chats, id)
			count++
		}
	}
	return
}
