package cats

import (
	"context"
	"fmt"
	"github.com/firstbot/bot-telegram/api/http/fetch"
)

type serviceMock struct{}

// NewServiceMock returns a Service answering by breed id: "fail", "missing", "empty" and "nourl"
// are the failure shapes, anything else yields one image.
func NewServiceMock() Service {
	return serviceMock{}
}

func (sm serviceMock) Search(ctx context.Context, breedId string) (page []Image, err error) {
	switch breedId {
	case "fail":
		err = fmt.Errorf("%w: connection refused", fetch.ErrNetwork)
	case "missing":
		err = fmt.Errorf("%w: 404", fetch.ErrStatus)
	case "empty":
		page = []Image{}
	case "nourl":
		page = []Image{
			{
				Id: "img0",
			},
		}
	default:
		page = []Image{
			{
				Id:  "img0",
				Url: "https://cdn2.thecatapi.com/images/" + breedId + ".jpg",
			},
		}
	}
	return
}
