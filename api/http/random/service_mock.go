package random

import (
	"context"
	"fmt"
	"github.com/firstbot/bot-telegram/api/http/fetch"
)

type serviceMock struct{}

// NewServiceMock returns a Service answering by count: 0 yields an empty list, 1 yields [42],
// 2 fails the network, 3 the status and 4 the payload.
func NewServiceMock() Service {
	return serviceMock{}
}

func (sm serviceMock) Numbers(ctx context.Context, min, max int64, count uint32) (nums []int64, err error) {
	switch count {
	case 0:
		nums = []int64{}
	case 1:
		nums = []int64{42}
	case 2:
		err = fmt.Errorf("%w: i/o timeout", fetch.ErrNetwork)
	case 3:
		err = fmt.Errorf("%w: 503", fetch.ErrStatus)
	default:
		err = fmt.Errorf("%w: unexpected token", fetch.ErrParse)
	}
	return
}
