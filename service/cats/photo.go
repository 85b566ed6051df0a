package cats

import (
	"context"
	apiCats "github.com/firstbot/bot-telegram/api/http/cats"
)

const BreedId = "beng"
const Caption = "Вот котик бенгальской породы😺:"
const MsgNotFound = "Не удалось получить фото котика нужной породы 🐱"

type Resolver struct {
	SvcCats apiCats.Service
}

// GetCatPhoto returns the first image of the breed, ok is false on any failure or an empty result.
func (r Resolver) GetCatPhoto(ctx context.Context) (u string, ok bool) {
	page, err := r.SvcCats.Search(ctx, BreedId)
	if err == nil && len(page) > 0 {
		u = page[0].Url
		ok = u != ""
	}
	return
}
