package weather

import (
	"context"
	"fmt"
	"github.com/firstbot/bot-telegram/model/location"
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

func (sl serviceLogging) Current(ctx context.Context, coords location.Coordinates) (c Conditions, err error) {
	c, err = sl.svc.Current(ctx, coords)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("weather.Current(%s): %+v, err=%s", coords, c, err))
	return
}
