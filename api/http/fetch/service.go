package fetch

import (
	"context"
	"errors"
	"fmt"
	"github.com/bytedance/sonic"
	"github.com/sony/gobreaker"
	"io"
	"net/http"
	"time"
)

// Service performs a single GET per call and decodes the JSON response. There are no retries.
type Service interface {
	Get(ctx context.Context, url string, dst any) (err error)
}

type Breaker struct {
	// Failures is the count of consecutive failures that opens the breaker, zero disables it.
	Failures uint32
	// Timeout is how long the breaker stays open before letting a probe request through.
	Timeout time.Duration
}

type service struct {
	clientHttp *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// ErrNetwork indicates the request did not complete: connection failure, timeout or an open breaker.
var ErrNetwork = errors.New("network failure")

// ErrStatus indicates a non-2xx response.
var ErrStatus = errors.New("unexpected response status")

// ErrParse indicates the response body is not the expected JSON.
var ErrParse = errors.New("malformed response payload")

func NewService(clientHttp *http.Client, name string, b Breaker) Service {
	return service{
		clientHttp: clientHttp,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    name,
			Timeout: b.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return b.Failures > 0 && counts.ConsecutiveFailures >= b.Failures
			},
		}),
	}
}

func (svc service) Get(ctx context.Context, url string, dst any) (err error) {
	var out any
	out, err = svc.breaker.Execute(func() (any, error) {
		return svc.get(ctx, url)
	})
	switch {
	case err == nil:
		if err = sonic.Unmarshal(out.([]byte), dst); err != nil {
			err = fmt.Errorf("%w: %s", ErrParse, err)
		}
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		err = fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	return
}

func (svc service) get(ctx context.Context, url string) (data []byte, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrNetwork, err)
		return
	}
	req.Header.Add("Accept", "application/json")
	var resp *http.Response
	resp, err = svc.clientHttp.Do(req)
	switch err {
	case nil:
		defer resp.Body.Close()
		switch {
		case resp.StatusCode < http.StatusOK, resp.StatusCode >= http.StatusMultipleChoices:
			err = fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
		default:
			data, err = io.ReadAll(resp.Body)
			if err != nil {
				err = fmt.Errorf("%w: %s", ErrNetwork, err)
			}
		}
	default:
		err = fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	return
}
