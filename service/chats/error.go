package chats

import "errors"

var ErrNotFound = errors.New("chat not found")
var ErrInternal = errors.New("internal failure")
