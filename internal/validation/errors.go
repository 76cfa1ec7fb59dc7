package validation

import "errors"

var ErrMalformedURL = errors.New("url malformed")
