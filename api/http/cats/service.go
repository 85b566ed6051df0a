package cats

import (
	"context"
	"github.com/firstbot/bot-telegram/api/http/fetch"
	"net/url"
)

type Image struct {
	Id  string `json:"id"`
	Url string `json:"url"`
}

type Service interface {
	Search(ctx context.Context, breedId string) (page []Image, err error)
}

type service struct {
	fetcher fetch.Service
	uri     string
}

func NewService(fetcher fetch.Service, uri string) Service {
	return service{
		fetcher: fetcher,
		uri:     uri,
	}
}

func (svc service) Search(ctx context.Context, breedId string) (page []Image, err error) {
	err = svc.fetcher.Get(ctx, svc.uri+"?breed_ids="+url.QueryEscape(breedId), &page)
	if err != nil {
		page = nil
	}
	return
}
