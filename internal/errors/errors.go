package errors

import "errors"

var (
	ErrUnknownOrderStatus = errors.New("unknown order status")
	ErrUnexpectedResponse = errors.New("unexpected response")
	ErrNodeNotFound       = errors.New("node not found")
	ErrNoRoute            = errors.New("no route for event")
	ErrNotConnected       = errors.New("socket not connected")
	ErrSessionClosed      = errors.New("session closed")
)
