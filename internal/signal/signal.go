package signal

import "context"

// Provenance records where a signal value came from, so responses can be
// honest about confidence.
type Provenance string

const (
	Live      Provenance = "Live"
	Simulated Provenance = "Simulated"
	Estimated Provenance = "Estimated"
)

// Fetch calls primary and falls back to the factory when it fails.
// Every signal adapter shares this shape: the caller always gets a usable
// value, the provenance says whether it was the real one.
func Fetch[T any](ctx context.Context, primary func(context.Context) (T, error), fallback func() T) (T, Provenance) {
	if v, err := primary(ctx); err == nil {
		return v, Live
	}
	return fallback(), Simulated
}
