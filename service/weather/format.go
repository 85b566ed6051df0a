package weather

import (
	"context"
	"errors"
	"fmt"
	"github.com/firstbot/bot-telegram/api/http/fetch"
	apiWeather "github.com/firstbot/bot-telegram/api/http/weather"
	"github.com/firstbot/bot-telegram/model/location"
	"github.com/microcosm-cc/bluemonday"
	"strconv"
	"strings"
)

const MsgErrConn = "Ошибка соединения с сервером погоды."
const MsgErrStatus = "Ошибка при получении данных о погоде"
const MsgErrParse = "Ошибка разбора данных о погоде."
const CityUnknown = "Неизвестное место"

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Report is the current weather rendered for a chat.
type Report struct {
	City           string
	Description    string
	Temperature    float64
	FeelsLike      float64
	WindSpeed      float64
	Recommendation string
}

func NewReport(c apiWeather.Conditions) (r Report) {
	r.City = c.City
	if !c.CityKnown {
		r.City = CityUnknown
	}
	r.Description = c.Description
	r.Temperature = c.Temperature
	r.FeelsLike = c.FeelsLike
	r.WindSpeed = c.WindSpeed
	r.Recommendation = ClassifyWind(c.WindSpeed).Recommendation()
	return
}

func (r Report) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Сейчас в %s %s\n", r.City, r.Description))
	sb.WriteString(fmt.Sprintf("🌡 Температура: %s°C (Ощущается как %s°C)\n", formatNumber(r.Temperature), formatNumber(r.FeelsLike)))
	sb.WriteString(fmt.Sprintf("💨 Скорость ветра: %s м/с\n", formatNumber(r.WindSpeed)))
	sb.WriteString(r.Recommendation)
	sb.WriteString("\n")
	return sb.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Formatter turns coordinates into the weather reply text. Upstream failures never escape as errors,
// they are rendered as one of the fixed failure texts.
type Formatter struct {
	SvcWeather apiWeather.Service
	HtmlPolicy *bluemonday.Policy
}

func (f Formatter) Report(ctx context.Context, coords location.Coordinates) (txt string, err error) {
	if err = coords.Validate(); err != nil {
		err = fmt.Errorf("%w: %s", ErrInvalidCoordinates, err)
		return
	}
	c, errFetch := f.SvcWeather.Current(ctx, coords)
	switch {
	case errFetch == nil:
		c.City = f.HtmlPolicy.Sanitize(c.City)
		c.Description = f.HtmlPolicy.Sanitize(c.Description)
		txt = NewReport(c).String()
	case errors.Is(errFetch, fetch.ErrStatus):
		txt = MsgErrStatus
	case errors.Is(errFetch, fetch.ErrParse):
		txt = MsgErrParse
	default:
		txt = MsgErrConn
	}
	return
}
