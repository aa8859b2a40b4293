package service

import "errors"

var (
	// ErrCounterExhausted возвращается когда счетчик кодов достиг верхней границы uint64.
	// Счетчик при этом не переполняется и не начинается заново.
	ErrCounterExhausted = errors.New("code counter exhausted")
)
