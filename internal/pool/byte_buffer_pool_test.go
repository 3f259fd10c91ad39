package pool

import "testing"

func TestGrowPreservesExistingBytes(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.SetLength(4)
	copy(bb.B, []byte{1, 2, 3, 4})

	bb.Grow(8)

	if bb.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", bb.Len())
	}
	for i, want := range []byte{1, 2, 3, 4} {
		if bb.B[i] != want {
			t.Fatalf("B[%d] = %d, want %d", i, bb.B[i], want)
		}
	}
	if bb.Cap() < 12 {
		t.Fatalf("Cap() = %d, want >= 12", bb.Cap())
	}
}

func TestGrowNoopWhenCapacitySuffices(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.SetLength(4)
	before := bb.Cap()

	bb.Grow(4)

	if bb.Cap() != before {
		t.Fatalf("Cap() changed from %d to %d on a no-op Grow", before, bb.Cap())
	}
}

func TestSliceViewsBeyondLength(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.SetLength(2)

	s := bb.Slice(0, bb.Cap())
	if len(s) != bb.Cap() {
		t.Fatalf("Slice(0, cap) len = %d, want %d", len(s), bb.Cap())
	}
}

func TestByteBufferPoolRoundTrip(t *testing.T) {
	p := NewByteBufferPool(ColumnBufferDefaultSize, ColumnBufferMaxThreshold)

	bb := p.Get()
	bb.MustWrite([]byte("hello"))
	p.Put(bb)

	again := p.Get()
	if again.Len() != 0 {
		t.Fatalf("Len() after Put/Get = %d, want 0 (Put must Reset)", again.Len())
	}
}

func TestByteBufferPoolDiscardsOversizeBuffers(t *testing.T) {
	p := NewByteBufferPool(4, 8)

	bb := NewByteBuffer(4)
	bb.Grow(100)
	p.Put(bb)

	fresh := p.Get()
	if fresh.Cap() > 8 {
		t.Fatalf("pool returned an oversize buffer of cap %d after discard", fresh.Cap())
	}
}
