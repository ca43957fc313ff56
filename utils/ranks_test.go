package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankTierFromAccuracy(t *testing.T) {
	testCases := []struct {
		accuracy float64
		want     string
	}{
		{accuracy: 100, want: RankGrandMaster},
		{accuracy: 90, want: RankGrandMaster},
		{accuracy: 89.9, want: RankDiamond},
		{accuracy: 75, want: RankDiamond},
		{accuracy: 74.9, want: RankGold},
		{accuracy: 60, want: RankGold},
		{accuracy: 59.9, want: RankSilver},
		{accuracy: 40, want: RankSilver},
		{accuracy: 39.9, want: RankBronze},
		{accuracy: 0, want: RankBronze},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, RankTierFromAccuracy(tc.accuracy))
	}
}
