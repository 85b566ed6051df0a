package main

import (
	"context"
	"fmt"
	"github.com/firstbot/bot-telegram/api/http/cats"
	"github.com/firstbot/bot-telegram/api/http/fetch"
	"github.com/firstbot/bot-telegram/api/http/ops"
	"github.com/firstbot/bot-telegram/api/http/random"
	"github.com/firstbot/bot-telegram/api/http/weather"
	"github.com/firstbot/bot-telegram/api/telegram"
	"github.com/firstbot/bot-telegram/config"
	"github.com/firstbot/bot-telegram/service"
	"github.com/firstbot/bot-telegram/service/avatar"
	serviceCats "github.com/firstbot/bot-telegram/service/cats"
	"github.com/firstbot/bot-telegram/service/chats"
	serviceRandom "github.com/firstbot/bot-telegram/service/random"
	serviceWeather "github.com/firstbot/bot-telegram/service/weather"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/telebot.v3"
	"log/slog"
	"net/http"
	"os"
	"time"
)

func main() {

	// init config and logger
	slog.Info("starting...")
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		slog.Error(fmt.Sprintf("failed to load the config: %s", err))
		os.Exit(1)
	}
	opts := slog.HandlerOptions{
		Level: slog.Level(cfg.Log.Level),
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &opts))
	started := time.Now()

	// init the upstream HTTP APIs
	clientHttp := &http.Client{
		Timeout: cfg.Api.Http.Timeout,
	}
	breaker := fetch.Breaker{
		Failures: cfg.Api.Http.Breaker.Failures,
		Timeout:  cfg.Api.Http.Breaker.Timeout,
	}
	fetcherWeather := fetch.NewServiceLogging(fetch.NewService(clientHttp, "weather", breaker), log)
	svcWeather := weather.NewService(fetcherWeather, cfg.Api.Weather.Uri, cfg.Api.Weather.Token)
	svcWeather = weather.NewServiceLogging(svcWeather, log)
	fetcherCats := fetch.NewServiceLogging(fetch.NewService(clientHttp, "cats", breaker), log)
	svcCats := cats.NewService(fetcherCats, cfg.Api.Cats.Uri)
	svcCats = cats.NewServiceLogging(svcCats, log)
	fetcherRandom := fetch.NewServiceLogging(fetch.NewService(clientHttp, "random", breaker), log)
	svcRandom := random.NewService(fetcherRandom, cfg.Api.Random.Uri)
	svcRandom = random.NewServiceLogging(svcRandom, log)

	// any text coming from the users or the upstreams is rendered as plain text in HTML mode
	htmlPolicy := bluemonday.StrictPolicy()

	// init the chats storage
	chatStor := chats.NewStorageMemory()
	chatStor = chats.NewStorageLogging(chatStor, log)
	defer chatStor.Close()
	sweeper, err := chats.NewSweeper(chatStor, cfg.Session.Ttl, cfg.Session.Sweep)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	sweeper.StartAsync()
	defer sweeper.Stop()

	// init Telegram bot
	s := telebot.Settings{
		URL:   cfg.Api.Telegram.Uri,
		Token: cfg.Api.Telegram.Token,
		Poller: &telebot.LongPoller{
			Timeout: cfg.Api.Telegram.Poll.Timeout,
		},
	}
	if cfg.Api.Telegram.Webhook.Host != "" {
		s.Poller, err = telegram.NewWebhook(
			cfg.Api.Telegram.Webhook.Host,
			cfg.Api.Telegram.Webhook.Path,
			cfg.Api.Telegram.Webhook.Port,
			cfg.Api.Telegram.Webhook.ConnMax,
			cfg.Api.Telegram.Webhook.Token,
		)
		if err != nil {
			log.Error(fmt.Sprintf("failed to init the webhook: %s", err))
			os.Exit(1)
		}
	}
	var b *telebot.Bot
	b, err = telegram.NewBot(context.Background(), s, telegram.Commands, cfg.Api.Telegram.Commands.RegisterTimeout, log)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	log.Info(fmt.Sprintf("Telegram bot @%s registered", b.Me.Username))

	// assign handlers
	menu := service.MakeMainMenu()
	rootHandler := service.RootHandler{
		Avatar: avatar.Synthesizer{
			UriBase: cfg.Api.Avatar.Uri,
		},
		Cats: serviceCats.Resolver{
			SvcCats: svcCats,
		},
		Random: serviceRandom.Resolver{
			SvcRandom: svcRandom,
		},
		HtmlPolicy: htmlPolicy,
	}
	locationHandler := service.LocationHandler{
		ChatStor: chatStor,
		Formatter: serviceWeather.Formatter{
			SvcWeather: svcWeather,
			HtmlPolicy: htmlPolicy,
		},
		Menu: menu,
	}
	b.Use(func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return service.LoggingHandlerFunc(next, log)
	})
	b.Handle("/start", service.ErrorHandlerFunc(service.StartHandlerFunc(menu, htmlPolicy), menu))
	b.Handle("/myID", service.ErrorHandlerFunc(service.MyIdHandlerFunc, menu))
	b.Handle(telebot.OnText, service.ErrorHandlerFunc(rootHandler.Handle, menu))
	b.Handle(telebot.OnLocation, service.ErrorHandlerFunc(locationHandler.Handle, menu))
	//
	go b.Start()
	defer b.Stop()

	// health probe
	r := ops.NewRouter(ops.NewHandler(b.Me.Username, started))
	log.Info(fmt.Sprintf("starting to listen the HTTP API @ port #%d...", cfg.Api.Port))
	err = r.Run(fmt.Sprintf(":%d", cfg.Api.Port))
	if err != nil {
		log.Error(fmt.Sprintf("failed to serve the HTTP API: %s", err))
		os.Exit(1)
	}
}
