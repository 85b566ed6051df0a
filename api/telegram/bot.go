package telegram

import (
	"context"
	"errors"
	"fmt"
	"github.com/cenkalti/backoff/v4"
	"gopkg.in/telebot.v3"
	"log/slog"
	"time"
)

const backOffInit = 1 * time.Second
const backOffFactor = 2
const backOffMax = 30 * time.Second

var ErrRegister = errors.New("failed to register the bot")

// Commands are the ones shown in the Telegram client menu.
var Commands = []telebot.Command{
	{
		Text:        "start",
		Description: "Начать работу с ботом",
	},
	{
		Text:        "myID",
		Description: "Узнать свой Telegram ID",
	},
}

// NewBot connects the bot and publishes its commands, retrying until the timeout is exhausted.
// An invalid token fails immediately.
func NewBot(ctx context.Context, s telebot.Settings, cmds []telebot.Command, timeout time.Duration, log *slog.Logger) (b *telebot.Bot, err error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = backOffInit
	bo.Multiplier = backOffFactor
	bo.MaxInterval, bo.MaxElapsedTime = backOffMax, timeout
	register := func() (err error) {
		if b == nil {
			b, err = telebot.NewBot(s)
		}
		if err == nil {
			err = b.SetCommands(cmds)
		}
		if errors.Is(err, telebot.ErrUnauthorized) {
			err = backoff.Permanent(err)
		}
		return
	}
	err = backoff.RetryNotify(register, backoff.WithContext(bo, ctx), func(err error, d time.Duration) {
		log.Warn(fmt.Sprintf("failed to register the bot, retrying in %s: %s", d, err))
	})
	if err != nil {
		b = nil
		err = fmt.Errorf("%w: %s", ErrRegister, err)
	}
	return
}
