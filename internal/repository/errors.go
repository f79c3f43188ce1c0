package repository

import "errors"

var ErrNotFound = errors.New("запись не найдена в хранилище")
var ErrAlreadyExists = errors.New("запись уже существует")
