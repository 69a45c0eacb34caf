package domain

import "errors"

var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstreamStatus      = errors.New("unexpected upstream status")
	ErrMalformedPayload    = errors.New("malformed upstream payload")
)
