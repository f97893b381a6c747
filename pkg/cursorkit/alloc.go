package cursorkit

import (
	"errors"

	"go.llib.dev/capkit/pkg/errorkit"
)

const ErrAllocation errorkit.Error = "ErrAllocation"

// Allocator hands out slice buffers for CollectWith.
type Allocator[T any] interface {
	// Alloc returns an empty buffer with at least n capacity.
	Alloc(n int) ([]T, error)
	// Free releases a buffer previously returned by Alloc.
	Free([]T)
}

// HeapAllocator allocates from the Go heap, and never fails.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) Alloc(n int) ([]T, error) { return make([]T, 0, n), nil }

func (HeapAllocator[T]) Free([]T) {}

// LimitedAllocator fails once the outstanding capacity would exceed Limit.
type LimitedAllocator[T any] struct {
	Limit int

	inUse int
}

func (a *LimitedAllocator[T]) Alloc(n int) ([]T, error) {
	if a.Limit < a.inUse+n {
		return nil, ErrAllocation.F("cannot allocate %d items, %d of %d are in use", n, a.inUse, a.Limit)
	}
	a.inUse += n
	return make([]T, 0, n), nil
}

func (a *LimitedAllocator[T]) Free(vs []T) {
	a.inUse -= cap(vs)
	if a.inUse < 0 {
		a.inUse = 0
	}
}

// InUse returns the capacity currently handed out.
func (a *LimitedAllocator[T]) InUse() int { return a.inUse }

const collectInitialCapacity = 8

// CollectWith drains c into a buffer obtained from alloc.
//
// On success the caller owns the returned buffer, and should give it back with alloc.Free.
// On failure every intermediate buffer is released before the error is returned,
// and the cursor is left where the failure happened.
func CollectWith[Item any](c Cursor[Item], alloc Allocator[Item]) ([]Item, error) {
	buf, err := alloc.Alloc(collectInitialCapacity)
	if err != nil {
		return nil, allocErr(err)
	}
	for {
		item, ok := c.Current()
		if !ok {
			return buf, nil
		}
		if len(buf) == cap(buf) {
			grown, err := alloc.Alloc(max(2*cap(buf), collectInitialCapacity))
			if err != nil {
				alloc.Free(buf)
				return nil, allocErr(err)
			}
			grown = append(grown, buf...)
			alloc.Free(buf)
			buf = grown
		}
		buf = append(buf, item)
		c.Advance()
	}
}

func allocErr(err error) error {
	if errors.Is(err, ErrAllocation) {
		return err
	}
	return ErrAllocation.Wrap(err)
}
