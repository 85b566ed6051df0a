package chats

import (
	"context"
	"fmt"
	"github.com/go-co-op/gocron"
	"time"
)

// NewSweeper schedules the removal of chats not updated within ttl, the caller starts and stops the scheduler.
func NewSweeper(stor Storage, ttl, every time.Duration) (s *gocron.Scheduler, err error) {
	s = gocron.NewScheduler(time.UTC)
	_, err = s.Every(every).Do(Sweep, stor, ttl)
	if err != nil {
		err = fmt.Errorf("%w: failed to schedule the chats sweep: %s", ErrInternal, err)
	}
	return
}

func Sweep(stor Storage, ttl time.Duration) {
	_, _ = stor.DeleteStale(context.TODO(), time.Now().Add(-ttl))
}
