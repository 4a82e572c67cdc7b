package docpdf

import (
	"errors"
	"testing"
)

func TestConverterPool(t *testing.T) {
	pool := NewConverterPool(2, WithBackend(BackendCanvas), withRenderer(&mockRenderer{}))
	defer func() { _ = pool.Close() }()

	if pool.Size() != 2 {
		t.Errorf("Size() = %d, want 2", pool.Size())
	}

	a, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	b, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if a == b {
		t.Error("pool handed out the same converter twice")
	}

	// A released converter is reused instead of creating a third.
	pool.Release(a)
	c, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if c != a {
		t.Error("released converter was not reused")
	}
}

func TestConverterPoolCreationFailure(t *testing.T) {
	pool := NewConverterPool(1, WithBackend(Backend("bogus")))
	defer func() { _ = pool.Close() }()

	if _, err := pool.Acquire(); err == nil {
		t.Fatal("expected error for unknown backend")
	}

	// The failed slot is returned; a corrected acquire path would still work,
	// so the pool must not consider itself full.
	if _, err := pool.Acquire(); err == nil {
		t.Fatal("expected error again, not a blocked acquire")
	}
}

// Shutdown ordering: releasing into a closed pool must not panic, and
// acquiring from a closed pool reports ErrPoolClosed instead of handing out
// a nil converter.
func TestConverterPoolCloseThenReleaseAndAcquire(t *testing.T) {
	pool := NewConverterPool(1, WithBackend(BackendCanvas), withRenderer(&mockRenderer{}))

	conv, err := pool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	pool.Release(conv) // no-op, must not panic on the closed channel

	if _, err := pool.Acquire(); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Acquire() after Close error = %v, want ErrPoolClosed", err)
	}
}

func TestConverterPoolMinimumSize(t *testing.T) {
	pool := NewConverterPool(0, withRenderer(&mockRenderer{}))
	defer func() { _ = pool.Close() }()

	if pool.Size() != 1 {
		t.Errorf("Size() = %d, want 1", pool.Size())
	}
}

func TestResolvePoolSize(t *testing.T) {
	if got := ResolvePoolSize(5); got != 5 {
		t.Errorf("explicit workers: got %d, want 5", got)
	}

	auto := ResolvePoolSize(0)
	if auto < MinPoolSize || auto > MaxPoolSize {
		t.Errorf("auto size %d outside [%d, %d]", auto, MinPoolSize, MaxPoolSize)
	}
}
