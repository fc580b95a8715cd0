package crdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorClock_Tick(t *testing.T) {
	vc := New()

	assert.Equal(t, int64(1), vc.Tick("dev-A"))
	assert.Equal(t, int64(2), vc.Tick("dev-A"))
	assert.Equal(t, int64(1), vc.Tick("dev-B"))

	assert.Equal(t, int64(2), vc["dev-A"])
	assert.Equal(t, int64(1), vc["dev-B"])
}

func TestVectorClock_Clone(t *testing.T) {
	vc := VectorClock{"dev-A": 3, "dev-B": 1}

	clone := vc.Clone()
	clone.Tick("dev-A")

	assert.Equal(t, int64(3), vc["dev-A"])
	assert.Equal(t, int64(4), clone["dev-A"])
}

func TestVectorClock_Merge(t *testing.T) {
	vc := VectorClock{"dev-A": 3, "dev-B": 1}
	other := VectorClock{"dev-A": 2, "dev-B": 5, "dev-C": 1}

	vc.Merge(other)

	assert.Equal(t, VectorClock{"dev-A": 3, "dev-B": 5, "dev-C": 1}, vc)
}

func TestVectorClock_Compare(t *testing.T) {
	tests := []struct {
		name  string
		a     VectorClock
		b     VectorClock
		order Ordering
	}{
		{
			name:  "equal clocks",
			a:     VectorClock{"dev-A": 1, "dev-B": 2},
			b:     VectorClock{"dev-A": 1, "dev-B": 2},
			order: Equal,
		},
		{
			name:  "strictly before",
			a:     VectorClock{"dev-A": 1},
			b:     VectorClock{"dev-A": 2, "dev-B": 1},
			order: Before,
		},
		{
			name:  "strictly after",
			a:     VectorClock{"dev-A": 2, "dev-B": 1},
			b:     VectorClock{"dev-A": 1},
			order: After,
		},
		{
			name:  "concurrent edits",
			a:     VectorClock{"dev-A": 2, "dev-B": 1},
			b:     VectorClock{"dev-A": 1, "dev-B": 2},
			order: Concurrent,
		},
		{
			name:  "empty vs empty",
			a:     New(),
			b:     New(),
			order: Equal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.order, tt.a.Compare(tt.b))
		})
	}
}
