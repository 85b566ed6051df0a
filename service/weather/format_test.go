package weather

import (
	"context"
	"github.com/firstbot/bot-telegram/api/http/fetch"
	apiWeather "github.com/firstbot/bot-telegram/api/http/weather"
	"github.com/firstbot/bot-telegram/model/location"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFormatter_Report(t *testing.T) {
	f := Formatter{
		SvcWeather: apiWeather.NewServiceMock(),
		HtmlPolicy: bluemonday.StrictPolicy(),
	}
	cases := map[string]struct {
		in  location.Coordinates
		out string
		err error
	}{
		"light wind": {
			in:  location.Coordinates{Latitude: 55.75, Longitude: 7},
			out: "Сейчас в Москва ясно\n🌡 Температура: 21.5°C (Ощущается как 20°C)\n💨 Скорость ветра: 7 м/с\nНа улице немного ветрено, оденьтесь чуть теплее\n",
		},
		"calm": {
			in:  location.Coordinates{Latitude: 55.75, Longitude: 0.5},
			out: "Сейчас в Москва ясно\n🌡 Температура: 21.5°C (Ощущается как 20°C)\n💨 Скорость ветра: 0.5 м/с\nВетра почти нет, погода хорошая\n",
		},
		"connection": {
			in:  location.Coordinates{Latitude: 1},
			out: MsgErrConn,
		},
		"status": {
			in:  location.Coordinates{Latitude: 2},
			out: MsgErrStatus,
		},
		"parse": {
			in:  location.Coordinates{Latitude: 3},
			out: MsgErrParse,
		},
		"invalid": {
			in:  location.Coordinates{Latitude: 91},
			err: ErrInvalidCoordinates,
		},
	}
	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			out, err := f.Report(context.TODO(), c.in)
			assert.Equal(t, c.out, out)
			assert.ErrorIs(t, err, c.err)
		})
	}
}

func TestFormatter_Report_Upstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("lat") {
		case "10":
			_, _ = w.Write([]byte(`{"weather": [{"description": "<b>дождь</b>"}], "main": {"temp": 12.3, "feels_like": 10.1}, "wind": {"speed": 20}, "name": "Tom & Jerry"}`))
		case "11":
			_, _ = w.Write([]byte(`{"weather": [{"description": "снег"}], "main": {"temp": -5, "feels_like": -11}, "wind": {"speed": 10}}`))
		case "14":
			_, _ = w.Write([]byte(`{"weather": [{"description": "снег"}], "main": {"temp": -5, "feels_like": -11}, "wind": {"speed": 1}, "name": ""}`))
		case "12":
			_, _ = w.Write([]byte(`not json`))
		default:
			w.WriteHeader(http.StatusTooManyRequests)
		}
	}))
	defer upstream.Close()
	unreachable := httptest.NewServer(http.NotFoundHandler())
	unreachable.Close()
	cases := map[string]struct {
		uri string
		in  location.Coordinates
		out string
	}{
		"storm, markup stripped": {
			uri: upstream.URL,
			in:  location.Coordinates{Latitude: 10, Longitude: 20},
			out: "Сейчас в Tom &amp; Jerry дождь\n🌡 Температура: 12.3°C (Ощущается как 10.1°C)\n💨 Скорость ветра: 20 м/с\nНе лучшее время, на улицу лучше не выходить\n",
		},
		"unknown place": {
			uri: upstream.URL,
			in:  location.Coordinates{Latitude: 11, Longitude: 20},
			out: "Сейчас в Неизвестное место снег\n🌡 Температура: -5°C (Ощущается как -11°C)\n💨 Скорость ветра: 10 м/с\nСейчас на улице очень сильный ветер, будьте осторожны, выходя из дома\n",
		},
		"empty place name": {
			uri: upstream.URL,
			in:  location.Coordinates{Latitude: 14, Longitude: 20},
			out: "Сейчас в  снег\n🌡 Температура: -5°C (Ощущается как -11°C)\n💨 Скорость ветра: 1 м/с\nВетра почти нет, погода хорошая\n",
		},
		"malformed": {
			uri: upstream.URL,
			in:  location.Coordinates{Latitude: 12},
			out: MsgErrParse,
		},
		"status": {
			uri: upstream.URL,
			in:  location.Coordinates{Latitude: 13},
			out: MsgErrStatus,
		},
		"unreachable": {
			uri: unreachable.URL,
			in:  location.Coordinates{Latitude: 55.75, Longitude: 37.62},
			out: MsgErrConn,
		},
	}
	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			f := Formatter{
				SvcWeather: apiWeather.NewService(fetch.NewService(&http.Client{}, "weather", fetch.Breaker{}), c.uri, "secret0"),
				HtmlPolicy: bluemonday.StrictPolicy(),
			}
			out, err := f.Report(context.TODO(), c.in)
			assert.Nil(t, err)
			assert.Equal(t, c.out, out)
			assert.NotEmpty(t, out)
		})
	}
}
