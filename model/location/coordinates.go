package location

import (
	"github.com/go-playground/validator/v10"
	"strconv"
)

type Coordinates struct {
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`
}

var validate = validator.New()

func (c Coordinates) Validate() error {
	return validate.Struct(c)
}

func (c Coordinates) String() string {
	return FormatDegrees(c.Latitude) + "," + FormatDegrees(c.Longitude)
}

// FormatDegrees renders the shortest exact decimal form, e.g. 55.75 and not 55.750000.
func FormatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NewCoordinates converts the single precision degrees Telegram delivers without the float32 noise,
// so 37.62 stays 37.62 and does not become 37.619998931884766.
func NewCoordinates(lat, lon float32) Coordinates {
	return Coordinates{
		Latitude:  widen(lat),
		Longitude: widen(lon),
	}
}

func widen(v float32) (w float64) {
	w, _ = strconv.ParseFloat(strconv.FormatFloat(float64(v), 'f', -1, 32), 64)
	return
}
