package util

import "errors"

var (
	ErrCardNotFound      = errors.New("card not found")
	ErrQuizNotFound      = errors.New("quiz not found")
	ErrEmptyQuiz         = errors.New("quiz must contain at least one question")
	ErrInvalidMode       = errors.New("invalid study mode")
	ErrInvalidActivity   = errors.New("invalid activity kind")
	ErrInvalidAnswer     = errors.New("invalid answer selection")
	ErrInvalidSettings   = errors.New("invalid pomodoro settings")
	ErrQuoteNotAvailable = errors.New("no quote available")
)
