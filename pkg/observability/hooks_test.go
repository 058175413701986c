package observability

import (
	"context"
	"testing"
	"time"
)

type recordingWalkHooks struct {
	starts, completes int
}

func (r *recordingWalkHooks) OnWalkStart(context.Context, string, string) { r.starts++ }
func (r *recordingWalkHooks) OnWalkComplete(context.Context, string, string, int, time.Duration) {
	r.completes++
}

type recordingSortHooks struct {
	errs []error
}

func (r *recordingSortHooks) OnSortStart(context.Context, int) {}
func (r *recordingSortHooks) OnSortComplete(_ context.Context, _ int, _ time.Duration, err error) {
	r.errs = append(r.errs, err)
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	ctx := context.Background()
	Walk().OnWalkStart(ctx, "dfs", "a")
	Walk().OnWalkComplete(ctx, "dfs", "a", 3, time.Millisecond)
	Sort().OnSortStart(ctx, 3)
	Sort().OnSortComplete(ctx, 3, time.Millisecond, nil)
	Server().OnRequest(ctx, "GET", "/graphs")
	Server().OnResponse(ctx, "GET", "/graphs", 200, time.Millisecond)
}

func TestSetWalkHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingWalkHooks{}
	SetWalkHooks(rec)

	ctx := context.Background()
	Walk().OnWalkStart(ctx, "bfs", "a")
	Walk().OnWalkComplete(ctx, "bfs", "a", 2, time.Millisecond)

	if rec.starts != 1 || rec.completes != 1 {
		t.Errorf("recorded starts=%d completes=%d, want 1 and 1", rec.starts, rec.completes)
	}
}

func TestSetSortHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingSortHooks{}
	SetSortHooks(rec)

	Sort().OnSortComplete(context.Background(), 4, time.Millisecond, nil)
	if len(rec.errs) != 1 {
		t.Fatalf("recorded %d completions, want 1", len(rec.errs))
	}
}

func TestSetNilHooksKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingWalkHooks{}
	SetWalkHooks(rec)
	SetWalkHooks(nil)

	Walk().OnWalkStart(context.Background(), "dfs", "a")
	if rec.starts != 1 {
		t.Errorf("recorded starts=%d, want 1 (nil must not unregister)", rec.starts)
	}
}

func TestReset(t *testing.T) {
	rec := &recordingWalkHooks{}
	SetWalkHooks(rec)
	Reset()

	Walk().OnWalkStart(context.Background(), "dfs", "a")
	if rec.starts != 0 {
		t.Errorf("recorded starts=%d after Reset, want 0", rec.starts)
	}
}
