package apperror

import "errors"

var (
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrUnknownAction   = errors.New("unknown action")
	ErrTemplateParsing = errors.New("could not parse templates")
)
