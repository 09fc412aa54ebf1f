package mail

import "errors"

var (
	ErrEmptyBody = errors.New("mail: message has neither text nor html body")
)
