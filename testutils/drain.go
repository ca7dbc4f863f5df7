// Package testutils holds assertions shared by the tests in this module.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/bst/chops"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// AssertClosed expects ch to be closed and empty right now.
// It never blocks, so it also fails if the producer has not
// closed ch yet.
func AssertClosed[T any](t TestT, ch <-chan T) {
	chops.TryRecv(ch).Match(
		func(el T) {
			t.Errorf("channel should be closed, but received: %v", el)
		},
		func() {},
		func() {
			t.Error("channel was empty but unclosed")
		},
	)
}

// DrainBlocking expects to receive data in order from ch, then
// expects ch to be closed. It waits up to timeout for each element
// and for the final close, so the producer may still be running
// when it is called.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Logf("draining (blocking): expecting %v", data)
	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting i=%d %v", i, datum)
				return
			}
			assert.Equal(t, datum, el)
		case <-time.After(timeout):
			t.Errorf("timed out, expecting i=%d %v", i, datum)
			return
		}
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-time.After(timeout):
		t.Error("at the end of draining, channel was not closed in time")
	}
}
