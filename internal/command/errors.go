package command

import "errors"

var ErrEmptyInput = errors.New("command text is empty")
