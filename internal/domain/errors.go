package domain

import "errors"

var (
	ErrQueueFull            = errors.New("command queue is full")
	ErrUnknownJob           = errors.New("unknown job")
	ErrRuntimeStopped       = errors.New("command runtime stopped")
	ErrAdapterTimeout       = errors.New("game command timed out")
	ErrAdapterFailure       = errors.New("game command failed")
	ErrMissingSlotValue     = errors.New("missing slot value")
	ErrLocatorUnavailable   = errors.New("locator unavailable")
	ErrSeedNotCracked       = errors.New("seed not cracked")
	ErrDataPermission       = errors.New("data permission not granted")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrSchematicNotFound    = errors.New("schematic not found")
)
