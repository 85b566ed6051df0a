package random

import (
	"context"
	"errors"
	"fmt"
	"github.com/firstbot/bot-telegram/api/http/fetch"
	apiRandom "github.com/firstbot/bot-telegram/api/http/random"
)

const Min = 1
const Max = 100

const fmtMsgNumber = "Ваше случайное число: %d"
const MsgErrNoNumber = "Ошибка: API не вернул число!"
const MsgErrStatus = "Ошибка при получении случайного числа!"
const MsgErrConn = "Ошибка соединения с сервисом случайных чисел!"

type Resolver struct {
	SvcRandom apiRandom.Service
}

// GetRandomDigit requests one number in [Min, Max] and renders it, or the text for the failure kind.
func (r Resolver) GetRandomDigit(ctx context.Context) (txt string) {
	nums, err := r.SvcRandom.Numbers(ctx, Min, Max, 1)
	switch {
	case err == nil && len(nums) > 0 && nums[0] >= Min && nums[0] <= Max:
		txt = fmt.Sprintf(fmtMsgNumber, nums[0])
	case err == nil, errors.Is(err, fetch.ErrParse):
		txt = MsgErrNoNumber
	case errors.Is(err, fetch.ErrStatus):
		txt = MsgErrStatus
	default:
		txt = MsgErrConn
	}
	return
}
