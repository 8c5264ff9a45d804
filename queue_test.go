// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parkq_test

import (
	"testing"

	"github.com/ykawada/parkq"
)

func TestNewRejectsNonPowerOfTwoCapacity(t *testing.T) {
	if _, err := parkq.New[int](100, 4); err == nil {
		t.Fatal("New(100, 4): got nil error, want error for non-power-of-two capacity")
	}
}

func TestNewRejectsZeroProducers(t *testing.T) {
	if _, err := parkq.New[int](64, 0); err == nil {
		t.Fatal("New(64, 0): got nil error, want error")
	}
}

func TestNewRejectsTooSmallCapacityForProducerBound(t *testing.T) {
	// capacity must exceed roughly 4*maxProducers for highWater <
	// criticalWater to hold.
	if _, err := parkq.New[int](4, 64); err == nil {
		t.Fatal("New(4, 64): got nil error, want error for undersized capacity")
	}
}

func TestNewRejectsZeroPublishInterval(t *testing.T) {
	if _, err := parkq.New[int](64, 4, parkq.WithPublishInterval(0)); err == nil {
		t.Fatal("New with WithPublishInterval(0): got nil error, want error")
	}
}

func TestCap(t *testing.T) {
	q, err := parkq.New[int](256, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if q.Cap() != 256 {
		t.Fatalf("Cap: got %d, want 256", q.Cap())
	}
}

func TestCloseWithNilDisposeIsNoOp(t *testing.T) {
	q, err := parkq.New[int](64, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	v := 1
	if err := q.Push(&v); err != nil {
		t.Fatalf("Push: %v", err)
	}
	q.Close(nil)
	if _, ok := q.TryPop(); !ok {
		t.Fatal("Close(nil) should leave resident references in place")
	}
}

func TestCloseDrainsAndDisposes(t *testing.T) {
	q, err := parkq.New[int](64, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	const n = 10
	vals := make([]int, n)
	for i := range vals {
		vals[i] = i
		if err := q.Push(&vals[i]); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	var disposed []int
	q.Close(func(ref *int) {
		disposed = append(disposed, *ref)
	})

	if len(disposed) != n {
		t.Fatalf("Close disposed %d references, want %d", len(disposed), n)
	}
	for i, v := range disposed {
		if v != i {
			t.Fatalf("disposed[%d] = %d, want %d", i, v, i)
		}
	}
	if _, ok := q.TryPop(); ok {
		t.Fatal("TryPop after Close should find nothing left")
	}
}
