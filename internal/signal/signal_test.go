package signal

import (
	"context"
	"errors"
	"testing"
)

func TestFetchLive(t *testing.T) {
	t.Parallel()
	v, prov := Fetch(context.Background(), func(context.Context) (int, error) {
		return 42, nil
	}, func() int {
		return -1
	})
	if v != 42 || prov != Live {
		t.Errorf("got (%d, %q), want (42, Live)", v, prov)
	}
}

func TestFetchFallback(t *testing.T) {
	t.Parallel()
	v, prov := Fetch(context.Background(), func(context.Context) (int, error) {
		return 0, errors.New("upstream down")
	}, func() int {
		return -1
	})
	if v != -1 || prov != Simulated {
		t.Errorf("got (%d, %q), want (-1, Simulated)", v, prov)
	}
}
