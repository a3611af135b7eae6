package pointer

import "testing"

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue()

	var got []int
	q.Defer(func() { got = append(got, 1) })
	q.Defer(func() { got = append(got, 2) })
	q.Defer(func() { got = append(got, 3) })

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	q.Drain()

	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("ran %d functions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run order[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Drain = %d, want 0", q.Len())
	}
}

func TestQueueDrainNestedDeferral(t *testing.T) {
	q := NewQueue()

	var got []string
	q.Defer(func() {
		got = append(got, "outer")
		q.Defer(func() { got = append(got, "nested") })
	})

	q.Drain()

	if len(got) != 2 || got[0] != "outer" || got[1] != "nested" {
		t.Errorf("nested deferral ran as %v, want [outer nested]", got)
	}
}

func TestQueueDrainEmpty(t *testing.T) {
	q := NewQueue()
	q.Drain() // must not panic
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}

func TestImmediateRunsSynchronously(t *testing.T) {
	ran := false
	Immediate{}.Defer(func() { ran = true })
	if !ran {
		t.Error("Immediate.Defer did not run the function")
	}
}
