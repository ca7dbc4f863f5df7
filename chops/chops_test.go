package chops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryRecv(t *testing.T) {
	tests := []struct {
		name      string
		chFactory func() chan string
		want      string
		want1     Status
	}{
		{
			"Ok",
			func() chan string {
				ch := make(chan string, 1)
				ch <- "Hello"
				return ch
			},
			"Hello",
			Ok,
		},
		{
			"Closed",
			func() chan string {
				ch := make(chan string)
				close(ch)
				return ch
			},
			"",
			Closed,
		},
		{
			"Blocked",
			func() chan string {
				return make(chan string)
			},
			"",
			Blocked,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, got1 := TryRecv(tt.chFactory()).Get()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want1, got1)
		})
	}
}

func TestResult_Match(t *testing.T) {
	var hit string
	TryRecv(make(chan int)).Match(
		func(int) { hit = "ok" },
		func() { hit = "closed" },
		func() { hit = "blocked" },
	)
	assert.Equal(t, "blocked", hit)

	ch := make(chan int, 1)
	ch <- 3
	TryRecv(ch).Match(
		func(v int) { hit = "ok" },
		func() { hit = "closed" },
		func() { hit = "blocked" },
	)
	assert.Equal(t, "ok", hit)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Ok", Ok.String())
	assert.Equal(t, "Closed", Closed.String())
	assert.Equal(t, "Blocked", Blocked.String())
	assert.Equal(t, "<invalid chops.Status>", Status(42).String())
}
