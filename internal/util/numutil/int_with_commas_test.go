package numutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntWithCommas(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{name: "zero", in: 0, want: "0"},
		{name: "below thousand", in: 999, want: "999"},
		{name: "thousand", in: 1000, want: "1,000"},
		{name: "padded group", in: 1_000_007, want: "1,000,007"},
		{name: "negative", in: -12345, want: "-12,345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntWithCommas(tt.in))
		})
	}

	assert.Equal(t, "4,294,967,295", IntWithCommas(uint32(4294967295)))
	assert.Equal(t, "12,000", IntWithCommas(uint64(12000)))
}
