package service

import "errors"

var ErrQuestionNotFound = errors.New("question not found")
