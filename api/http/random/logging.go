package random

import (
	"context"
	"fmt"
	"github.com/firstbot/bot-telegram/util"
	"log/slog"
)

type serviceLogging struct {
	svc Service
	log *slog.Logger
}

func NewServiceLogging(svc Service, log *slog.Logger) Service {
	return serviceLogging{
		svc: svc,
		log: log,
	}
}

func (sl serviceLogging) Numbers(ctx context.Context, min, max int64, count uint32) (nums []int64, err error) {
	nums, err = sl.svc.Numbers(ctx, min, max, count)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("random.Numbers(%d, %d, %d): %v, err=%s", min, max, count, nums, err))
	return
}
