package service

import "errors"

// ErrInvalidInput - входные данные отклонены до обращения к хранилищу или сети
var ErrInvalidInput = errors.New("invalid input")
