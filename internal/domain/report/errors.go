package report

import "errors"

// ErrQuotaExceeded indicates the narrative provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("narrative quota exceeded")
