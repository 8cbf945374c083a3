package images

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name         string
		existing     []string
		retained     []string
		uploaded     []string
		capacity     int
		wantSet      []string
		wantOrphaned []string
	}{
		{
			name:     "Create Path",
			existing: nil,
			retained: nil,
			uploaded: []string{"u1", "u2"},
			wantSet:  []string{"u1", "u2"},
		},
		{
			name:     "Retained First Then Uploaded",
			existing: []string{"a", "b"},
			retained: []string{"b", "a"},
			uploaded: []string{"c"},
			wantSet:  []string{"b", "a", "c"},
		},
		{
			name:         "Orphans Are Set Difference",
			existing:     []string{"a", "b", "c"},
			retained:     []string{"b"},
			uploaded:     nil,
			wantSet:      []string{"b"},
			wantOrphaned: []string{"a", "c"},
		},
		{
			name:         "Duplicate Existing Collapses To One Orphan",
			existing:     []string{"a", "a", "b"},
			retained:     []string{"b"},
			wantSet:      []string{"b"},
			wantOrphaned: []string{"a"},
		},
		{
			name:     "Duplicates In Retained Are Preserved",
			existing: []string{"a"},
			retained: []string{"a", "a"},
			wantSet:  []string{"a", "a"},
		},
		{
			name:     "Unknown Retained Kept Silently",
			existing: []string{"a"},
			retained: []string{"a", "ghost"},
			wantSet:  []string{"a", "ghost"},
		},
		{
			name:     "Capacity Truncates Without Orphaning Overflow",
			existing: []string{"a", "b"},
			retained: []string{"a", "b"},
			uploaded: []string{"c", "d"},
			capacity: 3,
			wantSet:  []string{"a", "b", "c"},
			// "d" is dropped from the set but stays a valid stored asset.
		},
		{
			name:     "Capacity Zero Means Unbounded",
			retained: []string{"a"},
			uploaded: []string{"b", "c"},
			capacity: 0,
			wantSet:  []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newSet, orphaned := Reconcile(tt.existing, tt.retained, tt.uploaded, tt.capacity)
			assert.Equal(t, tt.wantSet, newSet)
			assert.Equal(t, tt.wantOrphaned, orphaned)
		})
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	existing := []string{"a", "b", "c"}

	newSet, orphaned := Reconcile(existing, existing, nil, 0)

	assert.Equal(t, existing, newSet)
	assert.Empty(t, orphaned)
}

func TestSplitBatch(t *testing.T) {
	fh := func(name string) *multipart.FileHeader {
		return &multipart.FileHeader{Filename: name}
	}
	batch := []*multipart.FileHeader{fh("1"), fh("2"), fh("3"), fh("4")}

	t.Run("Declared Counts", func(t *testing.T) {
		groups := SplitBatch([]int{2, 1}, batch)
		assert.Len(t, groups, 2)
		assert.Len(t, groups[0], 2)
		assert.Equal(t, "1", groups[0][0].Filename)
		assert.Equal(t, "2", groups[0][1].Filename)
		assert.Len(t, groups[1], 1)
		assert.Equal(t, "3", groups[1][0].Filename)
	})

	t.Run("Count Defaults To One", func(t *testing.T) {
		groups := SplitBatch([]int{0, -1}, batch)
		assert.Len(t, groups[0], 1)
		assert.Equal(t, "1", groups[0][0].Filename)
		assert.Len(t, groups[1], 1)
		assert.Equal(t, "2", groups[1][0].Filename)
	})

	t.Run("Batch Exhaustion Leaves Empty Groups", func(t *testing.T) {
		groups := SplitBatch([]int{3, 2, 1}, batch)
		assert.Len(t, groups[0], 3)
		assert.Len(t, groups[1], 1)
		assert.Len(t, groups[2], 0)
	})

	t.Run("Empty Batch", func(t *testing.T) {
		groups := SplitBatch([]int{1, 1}, nil)
		assert.Len(t, groups, 2)
		assert.Empty(t, groups[0])
		assert.Empty(t, groups[1])
	})
}
