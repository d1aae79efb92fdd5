package shard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/glyphset/shard"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		frac      float64
		wantTrain int
		wantTest  int
	}{
		{"ten entries", 10, shard.DefaultTestFraction, 9, 1},
		{"hundred", 100, shard.DefaultTestFraction, 85, 15},
		{"small", 6, shard.DefaultTestFraction, 6, 0},
		{"four floors test to zero", 4, shard.DefaultTestFraction, 4, 0},
		{"twenty-four floors test", 24, shard.DefaultTestFraction, 21, 3},
		{"empty", 0, shard.DefaultTestFraction, 0, 0},
		{"no test", 10, 0, 10, 0},
		{"all test", 10, 1, 0, 10},
		{"clamped high", 10, 3, 0, 10},
		{"clamped low", 10, -1, 10, 0},
		{"negative n", -4, 0.5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			train, test := shard.Split(tt.n, tt.frac)

			require.Equal(t, tt.wantTrain, train.Len(), "train")
			require.Equal(t, tt.wantTest, test.Len(), "test")
			require.Equal(t, 0, train.Start)
			require.Equal(t, train.End, test.Start, "test must follow train")
		})
	}
}
