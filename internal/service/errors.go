package service

import "errors"

var (
	// ErrGeneratorExhausted возвращается когда не удалось сгенерировать свободный код
	// после максимального количества попыток
	ErrGeneratorExhausted = errors.New("code generator exhausted")
)
