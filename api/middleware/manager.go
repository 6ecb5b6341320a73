package middleware

import "github.com/MonkyMars/gecho"

type Middleware struct {
	logger *gecho.Logger
}

func NewMiddleware(logger *gecho.Logger) *Middleware {
	return &Middleware{
		logger: logger,
	}
}
