package random

import (
	"context"
	"github.com/firstbot/bot-telegram/api/http/fetch"
	"github.com/stretchr/testify/assert"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestService_Numbers(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("min") == "1" && q.Get("max") == "100" && q.Get("count") == "1":
			_, _ = w.Write([]byte(`[42]`))
		case q.Get("count") == "0":
			_, _ = w.Write([]byte(`[]`))
		case q.Get("count") == "2":
			_, _ = w.Write([]byte(`"Bad Request"`))
		case q.Get("count") == "3":
			_, _ = w.Write([]byte(`[7, null, 9]`))
		default:
			http.Error(w, "Bad Request", http.StatusBadRequest)
		}
	}))
	defer upstream.Close()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := NewService(fetch.NewService(upstream.Client(), "random", fetch.Breaker{}), upstream.URL)
	svc = NewServiceLogging(svc, log)
	cases := map[string]struct {
		min   int64
		max   int64
		count uint32
		nums  []int64
		err   error
	}{
		"ok": {
			min:   1,
			max:   100,
			count: 1,
			nums:  []int64{42},
		},
		"empty": {
			min:  1,
			max:  100,
			nums: []int64{},
		},
		"malformed": {
			min:   1,
			max:   100,
			count: 2,
			err:   fetch.ErrParse,
		},
		"null number": {
			min:   1,
			max:   100,
			count: 3,
			err:   fetch.ErrParse,
		},
		"status": {
			min:   100,
			max:   1,
			count: 1,
			err:   fetch.ErrStatus,
		},
	}
	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			nums, err := svc.Numbers(context.TODO(), c.min, c.max, c.count)
			assert.ElementsMatch(t, c.nums, nums)
			assert.ErrorIs(t, err, c.err)
		})
	}
}
