package sheet

import "time"

// Value input modes accepted by the append endpoint.
const (
	InputRaw         = "RAW"
	InputUserEntered = "USER_ENTERED"
)

const (
	DefaultSheetName = "Sheet1"
	DefaultTimeout   = 10 * time.Second
	DefaultTokenURL  = "https://oauth2.googleapis.com/token"

	insertRows = "INSERT_ROWS"
)
