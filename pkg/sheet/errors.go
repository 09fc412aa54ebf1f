package sheet

import "errors"

var (
	ErrNoRows = errors.New("sheet: no rows to append")
)
