package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBSSID(t *testing.T) {
	tests := []struct {
		raw     string
		want    BSSID
		wantErr bool
	}{
		{"AA:BB:CC:DD:EE:FF", "AA:BB:CC:DD:EE:FF", false},
		{"aa:bb:cc:dd:ee:ff", "AA:BB:CC:DD:EE:FF", false},
		{"00:11:22:33:44:55", "00:11:22:33:44:55", false},
		{"invalid", "", true},
		{"AA:BB:CC:DD:EE", "", true},
		{"AA:BB:CC:DD:EE:FF:GG", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := NewBSSID(tt.raw)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
