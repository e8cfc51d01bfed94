package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrJournalLimitTooLarge = errors.New("journal limit is too large")

	ErrUnexpectedReply = errors.New("unexpected reply from hive")
	ErrMalformedReply  = errors.New("malformed reply from hive")
)
