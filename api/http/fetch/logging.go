package fetch

import (
	"context"
	"fmt"
	"github.com/firstbot/bot-telegram/util"
	"log/slog"
	"net/url"
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

func (sl serviceLogging) Get(ctx context.Context, u string, dst any) (err error) {
	err = sl.svc.Get(ctx, u, dst)
	sl.log.Log(ctx, util.LogLevel(err), fmt.Sprintf("fetch.Get(%s): err=%s", redact(u), err))
	return
}

// redact drops the query, it may carry API keys.
func redact(u string) string {
	parsed, err := url.Parse(u)
	if err != nil {
		return "<invalid url>"
	}
	return parsed.Scheme + "://" + parsed.Host + parsed.Path
}
