package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizedPatch(t *testing.T) {
	tests := []struct {
		name    string
		patch   string
		want    map[string]any
		wantErr bool
	}{
		{
			name:  "object form",
			patch: `{"title":"new title","priority":2}`,
			want:  map[string]any{"title": "new title", "priority": float64(2)},
		},
		{
			name:  "double-encoded string form",
			patch: `"{\"title\":\"new title\"}"`,
			want:  map[string]any{"title": "new title"},
		},
		{
			name:  "empty patch",
			patch: "",
			want:  map[string]any{},
		},
		{
			name:  "null patch",
			patch: "null",
			want:  map[string]any{},
		},
		{
			name:  "empty string patch",
			patch: `""`,
			want:  map[string]any{},
		},
		{
			name:    "malformed",
			patch:   `{not json`,
			wantErr: true,
		},
		{
			name:    "string holding non-object",
			patch:   `"[1,2]"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := &SyncChange{Patch: []byte(tt.patch)}

			got, err := change.NormalizedPatch()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSyncChangeClone(t *testing.T) {
	original := &SyncChange{
		ID:    "chg-1",
		Patch: []byte(`{"a":1}`),
	}

	clone := original.Clone()
	clone.Patch[2] = 'b'

	assert.Equal(t, `{"a":1}`, string(original.Patch))
	assert.Equal(t, "chg-1", clone.ID)
}

func TestFingerprint(t *testing.T) {
	task := &Task{ID: "task-1", Title: "title"}

	fp := Fingerprint(task)
	require.Len(t, fp, 64)

	// Stable for equal values, different for different ones.
	assert.Equal(t, fp, Fingerprint(&Task{ID: "task-1", Title: "title"}))
	assert.NotEqual(t, fp, Fingerprint(&Task{ID: "task-1", Title: "other"}))

	assert.Equal(t, "", Fingerprint(nil))
}

func TestConflictRemoteWins(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		local  time.Time
		remote time.Time
		device string
		want   bool
	}{
		{name: "remote newer", local: base, remote: base.Add(time.Second), device: "dev-002", want: true},
		{name: "local newer", local: base.Add(time.Second), remote: base, device: "dev-002", want: false},
		{name: "tie remote device greater", local: base, remote: base, device: "dev-002", want: true},
		{name: "tie remote device smaller", local: base, remote: base, device: "dev-000", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Conflict{
				LocalTimestamp:  tt.local,
				RemoteTimestamp: tt.remote,
				RemoteDeviceID:  tt.device,
			}
			assert.Equal(t, tt.want, c.RemoteWins("dev-001"))
		})
	}
}

func TestEntitySnapshot(t *testing.T) {
	task := &Task{ID: "task-1", Title: "title", Priority: 3}

	snapshot, err := EntitySnapshot(task)
	require.NoError(t, err)
	assert.Equal(t, "task-1", snapshot["id"])
	assert.Equal(t, "title", snapshot["title"])
	assert.Equal(t, float64(3), snapshot["priority"])
}
