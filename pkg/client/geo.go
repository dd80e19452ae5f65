package client

import (
	"context"
	"time"
)

// DefaultLocateTimeout bounds a geolocation attempt.
const DefaultLocateTimeout = 10 * time.Second

// Locator reports the device position. Permission denial is an error.
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

type LocatorFunc func(ctx context.Context) (Coordinates, error)

func (f LocatorFunc) Locate(ctx context.Context) (Coordinates, error) { return f(ctx) }

// ResolveOrigin asks locator for the device position, waiting at most
// timeout. On error, denial, timeout or a nil locator it returns
// DefaultCampusCenter and fallback=true.
func ResolveOrigin(ctx context.Context, locator Locator, timeout time.Duration) (origin Coordinates, fallback bool) {
	if locator == nil {
		return DefaultCampusCenter, true
	}
	if timeout <= 0 {
		timeout = DefaultLocateTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		pos Coordinates
		err error
	}
	ch := make(chan result, 1)
	go func() {
		pos, err := locator.Locate(ctx)
		ch <- result{pos, err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return DefaultCampusCenter, true
		}
		return r.pos, false
	case <-ctx.Done():
		return DefaultCampusCenter, true
	}
}
