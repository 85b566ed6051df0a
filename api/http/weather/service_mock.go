package weather

import (
	"context"
	"fmt"
	"github.com/firstbot/bot-telegram/api/http/fetch"
	"github.com/firstbot/bot-telegram/model/location"
)

type serviceMock struct{}

// NewServiceMock returns a Service answering by latitude: 1 fails the network, 2 the status,
// 3 the payload, any other value yields calm weather in Moscow with the wind speed equal to the longitude.
func NewServiceMock() Service {
	return serviceMock{}
}

func (sm serviceMock) Current(ctx context.Context, coords location.Coordinates) (c Conditions, err error) {
	switch coords.Latitude {
	case 1:
		err = fmt.Errorf("%w: connection refused", fetch.ErrNetwork)
	case 2:
		err = fmt.Errorf("%w: 401", fetch.ErrStatus)
	case 3:
		err = fmt.Errorf("%w: wind speed is missing", fetch.ErrParse)
	default:
		c = Conditions{
			City:        "Москва",
			CityKnown:   true,
			Description: "ясно",
			Temperature: 21.5,
			FeelsLike:   20,
			WindSpeed:   coords.Longitude,
		}
	}
	return
}
