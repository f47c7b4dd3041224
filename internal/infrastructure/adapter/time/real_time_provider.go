package time

import (
	"time"

	"github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock
type RealTimeProvider struct {
	base time.Time
}

// NewRealTimeProvider creates a new real time provider.
// Nanotime readings are relative to the moment of creation.
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{base: time.Now()}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Nanotime returns nanoseconds elapsed on the monotonic clock since creation
func (p *RealTimeProvider) Nanotime() int64 {
	return int64(time.Since(p.base))
}
