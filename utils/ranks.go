package utils

// Rank tiers derived from averaged per-category accuracy
const (
	RankGrandMaster = "Grand Master"
	RankDiamond     = "Diamond"
	RankGold        = "Gold"
	RankSilver      = "Silver"
	RankBronze      = "Bronze"
)

// RankTierFromAccuracy maps a mean accuracy percentage to a rank tier
func RankTierFromAccuracy(accuracy float64) string {
	switch {
	case accuracy >= 90:
		return RankGrandMaster
	case accuracy >= 75:
		return RankDiamond
	case accuracy >= 60:
		return RankGold
	case accuracy >= 40:
		return RankSilver
	}
	return RankBronze
}
