package avatar

import (
	"fmt"
	"github.com/firstbot/bot-telegram/model/user"
	"net/url"
)

const UsernameMissing = "no_username"

const MsgErrDelivery = "Ошибка при отправке аватара"

const fmtSeed = "%s_%d_%s_%d"
const fmtUrl = "%s/%s?set=set4"

// Synthesize builds the image URL for the seed derived from the arguments, it does no I/O.
// Equal arguments always produce the same URL.
func Synthesize(uriBase, username string, userId int64, firstName string, timestamp int64) string {
	if username == "" {
		username = UsernameMissing
	}
	seed := fmt.Sprintf(fmtSeed, username, userId, prefix(firstName, 2), timestamp)
	return fmt.Sprintf(fmtUrl, uriBase, url.PathEscape(seed))
}

func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

type Synthesizer struct {
	UriBase string
}

func (s Synthesizer) Url(uc user.Context) string {
	return Synthesize(s.UriBase, uc.Username, uc.UserId, uc.FirstName, uc.Timestamp)
}
