package wirecube

import "errors"

var (
	ErrNoWindow       = errors.New("no window")
	ErrNoDocument     = errors.New("no document")
	ErrNoContainer    = errors.New("no container")
	ErrCanvasCreation = errors.New("canvas creation failed")
	ErrAppendChild    = errors.New("failed to append child")
)
