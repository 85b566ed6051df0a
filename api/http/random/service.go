package random

import (
	"context"
	"fmt"
	"github.com/firstbot/bot-telegram/api/http/fetch"
)

type Service interface {
	Numbers(ctx context.Context, min, max int64, count uint32) (nums []int64, err error)
}

type service struct {
	fetcher fetch.Service
	uri     string
}

const fmtUrl = "%s?min=%d&max=%d&count=%d"

func NewService(fetcher fetch.Service, uri string) Service {
	return service{
		fetcher: fetcher,
		uri:     uri,
	}
}

func (svc service) Numbers(ctx context.Context, min, max int64, count uint32) (nums []int64, err error) {
	var resp []*int64
	err = svc.fetcher.Get(ctx, fmt.Sprintf(fmtUrl, svc.uri, min, max, count), &resp)
	if err == nil {
		nums = make([]int64, 0, len(resp))
		for i, n := range resp {
			if n == nil {
				err = fmt.Errorf("%w: number #%d is null", fetch.ErrParse, i)
				nums = nil
				break
			}
			nums = append(nums, *n)
		}
	}
	return
}
