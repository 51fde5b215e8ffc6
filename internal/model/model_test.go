package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBurstSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    BurstSpec
		wantErr bool
	}{
		{"zero bursts", BurstSpec{Count: 0, MeanLength: 100, StdLength: 20}, false},
		{"typical", BurstSpec{Count: 2, MeanLength: 50, StdLength: 10}, false},
		{"zero std", BurstSpec{Count: 1, MeanLength: 5, StdLength: 0}, false},
		{"negative mean is allowed", BurstSpec{Count: 1, MeanLength: -3, StdLength: 1}, false},
		{"negative count", BurstSpec{Count: -1, MeanLength: 5, StdLength: 1}, true},
		{"negative std", BurstSpec{Count: 1, MeanLength: 5, StdLength: -1}, true},
		{"nan mean", BurstSpec{Count: 1, MeanLength: math.NaN(), StdLength: 1}, true},
		{"inf std", BurstSpec{Count: 1, MeanLength: 5, StdLength: math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRandomSpecValidate(t *testing.T) {
	assert.NoError(t, RandomSpec{Count: 0}.Validate())
	assert.NoError(t, RandomSpec{Count: 60}.Validate())
	assert.Error(t, RandomSpec{Count: -5}.Validate())
}

func TestInjectionCounts(t *testing.T) {
	in := NewInjection(4)
	in.Record(0, 0x10)
	in.Record(1, 0x00)
	in.Record(2, 0x0f)
	in.Record(2, 0x0f)

	assert.Equal(t, 3, in.Touched())
	assert.Equal(t, 1, in.Changed(), "zero masks and self-cancelling masks leave offsets unchanged")
	assert.Equal(t, []byte{0x10, 0x00, 0x00, 0x00}, in.Mask)
}

func TestBurstEventEnd(t *testing.T) {
	assert.Equal(t, 15, BurstEvent{Position: 10, Length: 5}.End())
	assert.Equal(t, 3, Range{Start: 4, End: 7}.Len())
}
