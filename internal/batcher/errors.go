package batcher

import "errors"

// ErrBatcherClosed is returned by Submit once the batcher has been stopped.
// Jobs admitted before the stop are still dispatched and answered.
var ErrBatcherClosed = errors.New("batcher: closed")
