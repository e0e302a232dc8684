package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "raw milliseconds", input: "90000", want: 90000},
		{name: "zero", input: "0", want: 0},
		{name: "minutes and seconds", input: "1:30", want: 90000},
		{name: "hours minutes seconds", input: "1:02:03", want: 3723000},
		{name: "leading whitespace", input: " 2:00 ", want: 120000},
		{name: "negative", input: "-5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "too many parts", input: "1:2:3:4", wantErr: true},
		{name: "negative component", input: "1:-2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "0:00", formatTimestamp(0))
	assert.Equal(t, "1:30", formatTimestamp(90000))
	assert.Equal(t, "1:02:03", formatTimestamp(3723000))
	assert.Equal(t, "0:05.250", formatTimestamp(5250))
	assert.Equal(t, "-", formatTimestamp(-1))
}
