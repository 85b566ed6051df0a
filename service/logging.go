package service

import (
	"context"
	"fmt"
	"github.com/bytedance/sonic"
	"github.com/firstbot/bot-telegram/util"
	"github.com/segmentio/ksuid"
	"gopkg.in/telebot.v3"
	"log/slog"
	"time"
)

const KeyRequestId = "requestId"

func LoggingHandlerFunc(next telebot.HandlerFunc, log *slog.Logger) telebot.HandlerFunc {
	return func(tgCtx telebot.Context) (err error) {
		reqId := ksuid.New().String()
		tgCtx.Set(KeyRequestId, reqId)
		data, _ := sonic.Marshal(tgCtx.Update())
		log.Debug(fmt.Sprintf("update %s: %s", reqId, string(data)))
		t := time.Now()
		err = next(tgCtx)
		log.Log(context.TODO(), util.LogLevel(err), fmt.Sprintf("update %s: done in %s, err=%s", reqId, time.Since(t), err))
		return
	}
}
