package devsly

import (
	"github.com/devsly/devsly-go/internal/api"
)

// Logger is the interface used by the client for logging HTTP requests,
// retries, and errors. Implement it to integrate with your logging
// library and supply the implementation via [WithLogger]. Ensure your
// implementation redacts credentials before persisting logs.
type Logger = api.Logger

// NoopLogger is a [Logger] that silently discards all log messages.
// It is the default when no logger is provided.
type NoopLogger = api.NoopLogger
