package pool

import "errors"

// ErrRetry is returned by submit when no parked worker was available and a
// new one could not be created. The condition is transient; the caller
// decides whether to loop.
var ErrRetry = errors.New("no worker available")
