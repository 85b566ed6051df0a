package service

import "strings"

// Command is the classified meaning of an inbound text message.
type Command int

const (
	CmdGreeting Command = iota
	CmdAvatar
	CmdMyId
	CmdWeather
	CmdCatPhoto
	CmdRandom
)

const LabelAvatar = "Сгенерируй аватар"
const LabelMyId = "Мой ID"
const LabelWeather = "Погода сегодня"
const LabelCatPhoto = "Фото котика"
const LabelRandom = "Рандомное число"

var prefixesRandom = []string{
	"рандом",
	"случайн",
}

// Classify maps the text to exactly one command, exact labels take priority over the random prefixes
// and anything unrecognized is a greeting.
func Classify(txt string) (cmd Command) {
	switch txt {
	case LabelAvatar:
		cmd = CmdAvatar
	case LabelMyId:
		cmd = CmdMyId
	case LabelWeather:
		cmd = CmdWeather
	case LabelCatPhoto:
		cmd = CmdCatPhoto
	default:
		cmd = CmdGreeting
		txtLower := strings.ToLower(txt)
		for _, p := range prefixesRandom {
			if strings.HasPrefix(txtLower, p) {
				cmd = CmdRandom
				break
			}
		}
	}
	return
}

func (cmd Command) String() string {
	return [...]string{
		"CmdGreeting",
		"CmdAvatar",
		"CmdMyId",
		"CmdWeather",
		"CmdCatPhoto",
		"CmdRandom",
	}[cmd]
}
