package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCard(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{name: "sixteen digits", number: "4111111111111111", want: "411111******1111"},
		{name: "fifteen digits", number: "378282246310005", want: "378282*****0005"},
		{name: "too short to split", number: "1234", want: "****"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskCard(tt.number))
		})
	}
}

func TestGetUUId(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GetUUId()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
