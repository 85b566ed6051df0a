package weather

// Wind is the recommendation bucket for a wind speed in m/s.
type Wind int

const (
	WindCalm Wind = iota
	WindLight
	WindStrong
	WindStorm
)

var windRecommendations = [...]string{
	"Ветра почти нет, погода хорошая",
	"На улице немного ветрено, оденьтесь чуть теплее",
	"Сейчас на улице очень сильный ветер, будьте осторожны, выходя из дома",
	"Не лучшее время, на улицу лучше не выходить",
}

// ClassifyWind maps a speed to its bucket, the lower bound of each bucket is inclusive.
func ClassifyWind(speed float64) (w Wind) {
	switch {
	case speed < 5:
		w = WindCalm
	case speed < 10:
		w = WindLight
	case speed < 20:
		w = WindStrong
	default:
		w = WindStorm
	}
	return
}

func (w Wind) Recommendation() string {
	return windRecommendations[w]
}

func (w Wind) String() string {
	return [...]string{
		"WindCalm",
		"WindLight",
		"WindStrong",
		"WindStorm",
	}[w]
}
