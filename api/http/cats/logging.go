package cats

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

func (sl serviceLogging) Search(ctx context.Context, breedId string) (page []Image, err error) {
	page, err = sl.svc.Search(ctx, breedId)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("cats.Search(%s): %d, err=%s", breedId, len(page), err))
	return
}
