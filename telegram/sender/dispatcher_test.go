package sender

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "read tcp 127.0.0.1:443: i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestDispatcherRunsJobs(t *testing.T) {
	d := NewDispatcher(Options{QueueSize: 4, Workers: 1, RetryBackoff: time.Millisecond})
	done := make(chan struct{})
	if err := d.Enqueue(context.Background(), "send.text", "sendMessage", func() error {
		close(done)
		return nil
	}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}
	d.Close()
	if got := d.ErrorCount(); got != 0 {
		t.Fatalf("error count = %d, want 0", got)
	}
}

func TestDispatcherRetriesTimeouts(t *testing.T) {
	d := NewDispatcher(Options{QueueSize: 4, Workers: 1, MaxRetries: 2, RetryBackoff: time.Millisecond})
	var calls atomic.Int32
	done := make(chan struct{})
	if err := d.Enqueue(context.Background(), "edit.md", "editMessageText", func() error {
		if calls.Add(1) == 1 {
			return timeoutError{}
		}
		close(done)
		return nil
	}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("job was not retried")
	}
	d.Close()
	if got := d.ErrorCount(); got != 0 {
		t.Fatalf("error count = %d, want 0 after eventual success", got)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("calls = %d, want 2", got)
	}
}

func TestDispatcherCountsPermanentFailures(t *testing.T) {
	d := NewDispatcher(Options{QueueSize: 4, Workers: 1, RetryBackoff: time.Millisecond})
	if err := d.Enqueue(context.Background(), "send.text", "sendMessage", func() error {
		return errors.New("telegram: bad request (400)")
	}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	d.Close()
	if got := d.ErrorCount(); got != 1 {
		t.Fatalf("error count = %d, want 1", got)
	}
}

func TestDispatcherQueueLimits(t *testing.T) {
	d := NewDispatcher(Options{QueueSize: 1, Workers: 1, RetryBackoff: time.Millisecond})
	started := make(chan struct{})
	release := make(chan struct{})

	if err := d.Enqueue(context.Background(), "a", "", func() error {
		close(started)
		<-release
		return nil
	}); err != nil {
		t.Fatalf("enqueue blocker: %v", err)
	}
	<-started

	if err := d.Enqueue(context.Background(), "b", "", func() error { return nil }); err != nil {
		t.Fatalf("enqueue queued job: %v", err)
	}
	if depth := d.QueueDepth(); depth != 1 {
		t.Fatalf("queue depth = %d, want 1", depth)
	}

	err := d.Enqueue(context.Background(), "c", "", func() error { return nil })
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}

	close(release)
	d.Close()
}

func TestDispatcherEnqueueAfterClose(t *testing.T) {
	d := NewDispatcher(Options{QueueSize: 1, Workers: 1})
	d.Close()
	err := d.Enqueue(context.Background(), "send.text", "sendMessage", func() error { return nil })
	if !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("expected ErrQueueClosed, got %v", err)
	}
}

func TestSanitizeErrorMessageRedactsToken(t *testing.T) {
	err := errors.New(`Post "https://api.telegram.org/bot123456:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw/sendMessage": EOF`)
	got := sanitizeErrorMessage(err)
	if got != `Post "https://api.telegram.org/bot<redacted>/sendMessage": EOF` {
		t.Fatalf("token not redacted: %q", got)
	}
}

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "deadline", err: context.DeadlineExceeded, want: "timeout"},
		{name: "net timeout", err: timeoutError{}, want: "timeout"},
		{name: "api code in message", err: errors.New("telegram: gateway error (502)"), want: "http_5xx"},
		{name: "client error", err: errors.New("telegram: bad request (400)"), want: "http_4xx"},
		{name: "opaque", err: errors.New("boom"), want: "unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyError(tc.err); got != tc.want {
				t.Fatalf("classifyError(%v) = %q, want %q", tc.err, got, tc.want)
			}
		})
	}
}
