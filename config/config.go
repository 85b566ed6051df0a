package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"os"
	"time"
)

type Config struct {
	Api struct {
		Port     uint16 `envconfig:"API_PORT" default:"8080" required:"true"`
		Telegram struct {
			Token    string `envconfig:"TOKEN"`
			Uri      string `envconfig:"API_TELEGRAM_URI" default:"https://api.telegram.org" required:"true"`
			Commands struct {
				RegisterTimeout time.Duration `envconfig:"API_TELEGRAM_REGISTER_TIMEOUT" default:"1m" required:"true"`
			}
			Poll struct {
				Timeout time.Duration `envconfig:"API_TELEGRAM_POLL_TIMEOUT" default:"10s" required:"true"`
			}
			Webhook struct {
				Host    string `envconfig:"API_TELEGRAM_WEBHOOK_HOST" default:""`
				Path    string `envconfig:"API_TELEGRAM_WEBHOOK_PATH" default:"/telegram/webhook" required:"true"`
				Port    uint16 `envconfig:"API_TELEGRAM_WEBHOOK_PORT" default:"8081" required:"true"`
				ConnMax uint32 `envconfig:"API_TELEGRAM_WEBHOOK_CONN_MAX" default:"100" required:"true"`
				Token   string `envconfig:"API_TELEGRAM_WEBHOOK_TOKEN" default:""`
			}
		}
		Weather struct {
			Uri   string `envconfig:"API_WEATHER_URI" default:"https://api.openweathermap.org/data/2.5/weather" required:"true"`
			Token string `envconfig:"TOKEN_WEATHER"`
		}
		Cats struct {
			Uri string `envconfig:"API_CATS_URI" default:"https://api.thecatapi.com/v1/images/search" required:"true"`
		}
		Random struct {
			Uri string `envconfig:"API_RANDOM_URI" default:"https://www.randomnumberapi.com/api/v1.0/random" required:"true"`
		}
		Avatar struct {
			Uri string `envconfig:"API_AVATAR_URI" default:"https://robohash.org" required:"true"`
		}
		Http struct {
			Timeout time.Duration `envconfig:"API_HTTP_TIMEOUT" default:"10s" required:"true"`
			Breaker struct {
				Failures uint32        `envconfig:"API_HTTP_BREAKER_FAILURES" default:"5" required:"true"`
				Timeout  time.Duration `envconfig:"API_HTTP_BREAKER_TIMEOUT" default:"1m" required:"true"`
			}
		}
	}
	Session struct {
		Ttl   time.Duration `envconfig:"SESSION_TTL" default:"24h" required:"true"`
		Sweep time.Duration `envconfig:"SESSION_SWEEP" default:"10m" required:"true"`
	}
	Log struct {
		Level int `envconfig:"LOG_LEVEL" default:"-4" required:"true"`
	}
}

// ErrMissingSecrets is returned when either the bot token or the weather API key is not set.
var ErrMissingSecrets = errors.New("Не найдены обязательные переменные окружения: TOKEN, TOKEN_WEATHER")

var ErrInvalid = errors.New("invalid configuration")

// NewConfigFromEnv reads the optional .env file in the working directory first, then the environment.
func NewConfigFromEnv() (cfg Config, err error) {
	err = godotenv.Load()
	if errors.Is(err, os.ErrNotExist) {
		err = nil
	}
	if err == nil {
		err = envconfig.Process("", &cfg)
	}
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	if err == nil && (cfg.Api.Telegram.Token == "" || cfg.Api.Weather.Token == "") {
		err = ErrMissingSecrets
	}
	return
}
