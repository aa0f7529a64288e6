package markup

import "errors"

var ErrInvalidArgument = errors.New("invalid argument")
