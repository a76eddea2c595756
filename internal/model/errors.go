package model

import "errors"

var (
	ErrUnavailable   = errors.New("server temporarily unavailable")
	ErrBadResponse   = errors.New("invalid server response")
	ErrAPI           = errors.New("api error")
	ErrNotFound      = errors.New("file not found")
	ErrQuotaExceeded = errors.New("upload limit reached")
	ErrNoGroups      = errors.New("no upload groups found")
)
