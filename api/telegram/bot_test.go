package telegram

import (
	"context"
	"github.com/stretchr/testify/assert"
	"gopkg.in/telebot.v3"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

const respMe = `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"firstbot","username":"firstbot"}}`
const respTrue = `{"ok":true,"result":true}`
const respInternal = `{"ok":false,"error_code":500,"description":"Internal Server Error"}`
const respUnauthorized = `{"ok":false,"error_code":401,"description":"Unauthorized"}`

type fakeApi struct {
	lock     sync.Mutex
	failures int
	unauthz  bool
	calls    map[string]int
	commands string
}

func (f *fakeApi) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.lock.Lock()
	defer f.lock.Unlock()
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	f.calls[method]++
	w.Header().Set("Content-Type", "application/json")
	switch {
	case f.unauthz:
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(respUnauthorized))
	case f.failures > 0:
		f.failures--
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(respInternal))
	case method == "getMe":
		_, _ = w.Write([]byte(respMe))
	case method == "setMyCommands":
		data, _ := io.ReadAll(r.Body)
		f.commands = string(data)
		_, _ = w.Write([]byte(respTrue))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func TestNewBot(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cases := map[string]struct {
		api   *fakeApi
		err   error
		calls map[string]int
	}{
		"ok": {
			api: &fakeApi{},
			calls: map[string]int{
				"getMe":         1,
				"setMyCommands": 1,
			},
		},
		"recovers after failure": {
			api: &fakeApi{
				failures: 1,
			},
			calls: map[string]int{
				"getMe":         2,
				"setMyCommands": 1,
			},
		},
		"invalid token": {
			api: &fakeApi{
				unauthz: true,
			},
			err: ErrRegister,
			calls: map[string]int{
				"getMe": 1,
			},
		},
	}
	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			c.api.calls = map[string]int{}
			srv := httptest.NewServer(c.api)
			defer srv.Close()
			s := telebot.Settings{
				URL:    srv.URL,
				Token:  "token0",
				Client: srv.Client(),
				Poller: &telebot.LongPoller{
					Timeout: time.Second,
				},
			}
			b, err := NewBot(context.TODO(), s, Commands, 10*time.Second, log)
			assert.ErrorIs(t, err, c.err)
			assert.Equal(t, c.calls, c.api.calls)
			if c.err == nil {
				assert.Equal(t, "firstbot", b.Me.Username)
				assert.Contains(t, c.api.commands, "myID")
			} else {
				assert.Nil(t, b)
			}
		})
	}
}
