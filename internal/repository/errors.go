package repository

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("task not found")

// ErrPersistence - файл хранилища не читается или не пишется
var ErrPersistence = errors.New("storage error")

// ErrCorruptFile - файл существует, но его содержимое не разбирается
var ErrCorruptFile = fmt.Errorf("corrupt task file: %w", ErrPersistence)

var ErrAlreadyExists = errors.New("task id already exists")
