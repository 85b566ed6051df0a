package weather

import (
	"context"
	"fmt"
	"github.com/firstbot/bot-telegram/api/http/fetch"
	"github.com/firstbot/bot-telegram/model/location"
)

// Conditions is the current weather at a point. CityKnown is false when the provider did not name the place.
type Conditions struct {
	City        string
	CityKnown   bool
	Description string
	Temperature float64
	FeelsLike   float64
	WindSpeed   float64
}

type Service interface {
	Current(ctx context.Context, coords location.Coordinates) (c Conditions, err error)
}

type service struct {
	fetcher fetch.Service
	uri     string
	token   string
}

// response mirrors the subset of the OpenWeather "current weather" payload in use,
// pointers tell absent fields from zero values.
type response struct {
	Name    *string `json:"name"`
	Weather []struct {
		Description *string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

const fmtUrl = "%s?APPID=%s&lang=ru&units=metric&lat=%s&lon=%s"

func NewService(fetcher fetch.Service, uri, token string) Service {
	return service{
		fetcher: fetcher,
		uri:     uri,
		token:   token,
	}
}

func (svc service) Current(ctx context.Context, coords location.Coordinates) (c Conditions, err error) {
	u := fmt.Sprintf(
		fmtUrl,
		svc.uri,
		svc.token,
		location.FormatDegrees(coords.Latitude),
		location.FormatDegrees(coords.Longitude),
	)
	var resp response
	err = svc.fetcher.Get(ctx, u, &resp)
	if err == nil {
		c, err = resp.conditions()
	}
	return
}

func (resp response) conditions() (c Conditions, err error) {
	switch {
	case len(resp.Weather) == 0 || resp.Weather[0].Description == nil:
		err = fmt.Errorf("%w: weather description is missing", fetch.ErrParse)
	case resp.Main == nil || resp.Main.Temp == nil || resp.Main.FeelsLike == nil:
		err = fmt.Errorf("%w: temperature is missing", fetch.ErrParse)
	case resp.Wind == nil || resp.Wind.Speed == nil:
		err = fmt.Errorf("%w: wind speed is missing", fetch.ErrParse)
	default:
		if resp.Name != nil {
			c.City = *resp.Name
			c.CityKnown = true
		}
		c.Description = *resp.Weather[0].Description
		c.Temperature = *resp.Main.Temp
		c.FeelsLike = *resp.Main.FeelsLike
		c.WindSpeed = *resp.Wind.Speed
	}
	return
}
