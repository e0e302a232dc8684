package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMomentClose_SetsEndAndDuration(t *testing.T) {
	m := Moment{ID: "m1", Category: "Offense", StartMs: 1000}

	require.NoError(t, m.Close(5000))

	require.NotNil(t, m.EndMs)
	assert.Equal(t, int64(5000), *m.EndMs)
	assert.Equal(t, int64(4000), m.DurationMs())
	assert.False(t, m.IsOpen())
}

func TestMomentClose_AlreadyClosed(t *testing.T) {
	m := Moment{ID: "m1", StartMs: 1000}
	require.NoError(t, m.Close(2000))

	err := m.Close(3000)

	assert.ErrorIs(t, err, ErrAlreadyClosed)
	assert.Equal(t, int64(2000), *m.EndMs, "end must not move on a failed close")
}

func TestMomentClose_EndBeforeStart(t *testing.T) {
	m := Moment{ID: "m1", StartMs: 1000}

	err := m.Close(999)

	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.True(t, m.IsOpen())
}

func TestMomentRetime(t *testing.T) {
	tests := []struct {
		name     string
		start    int64
		end      int64
		wantErr  error
		wantDur  int64
	}{
		{"widen interval", 500, 6000, nil, 5500},
		{"zero-length allowed", 2000, 2000, nil, 0},
		{"end before start", 3000, 2000, ErrInvalidRange, 0},
		{"negative start", -1, 2000, ErrInvalidRange, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Moment{ID: "m1", StartMs: 1000}
			require.NoError(t, m.Close(2000))

			err := m.Retime(tt.start, tt.end)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDur, m.DurationMs())
		})
	}
}

func TestMomentRetime_OpenMomentRejected(t *testing.T) {
	m := Moment{ID: "m1", StartMs: 1000}

	err := m.Retime(500, 2000)

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestMomentOverlaps(t *testing.T) {
	end := int64(5000)
	tests := []struct {
		name   string
		moment Moment
		s, e   int64
		want   bool
	}{
		{"fully inside", Moment{StartMs: 2000, EndMs: &end}, 1000, 6000, true},
		{"touching start boundary excluded", Moment{StartMs: 6000}, 1000, 6000, false},
		{"touching end boundary excluded", Moment{StartMs: 0, EndMs: &end}, 5000, 6000, false},
		{"open moment extends to now", Moment{StartMs: 2000}, 100000, 200000, true},
		{"open moment starting after window", Moment{StartMs: 300000}, 100000, 200000, false},
		{"partial overlap", Moment{StartMs: 4000, EndMs: &end}, 4500, 9000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.moment.Overlaps(tt.s, tt.e))
		})
	}
}

func TestLayerValidateAgainst(t *testing.T) {
	end := int64(5000)
	closed := Moment{ID: "m1", StartMs: 1000, EndMs: &end}
	open := Moment{ID: "m2", StartMs: 1000}

	ts := func(v int64) *int64 { return &v }

	tests := []struct {
		name    string
		layer   Layer
		moment  *Moment
		wantErr error
	}{
		{"inside closed interval", Layer{TimestampMs: ts(3000)}, &closed, nil},
		{"on boundaries", Layer{TimestampMs: ts(5000)}, &closed, nil},
		{"before start", Layer{TimestampMs: ts(999)}, &closed, ErrTimestampOutOfRange},
		{"after end", Layer{TimestampMs: ts(5001)}, &closed, ErrTimestampOutOfRange},
		{"no timestamp", Layer{}, &closed, nil},
		{"open moment unconstrained", Layer{TimestampMs: ts(999999)}, &open, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layer.ValidateAgainst(tt.moment)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
