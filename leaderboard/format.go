package leaderboard

import "fmt"

// FormatMinutes renders a minute total as "1h 30m" or "45m".
func FormatMinutes(total int) string {
	hours, minutes := total/60, total%60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// Tier is the medal shown next to a rank.
type Tier int

const (
	TierNone Tier = iota
	TierGold
	TierSilver
	TierBronze
)

// TierForRank maps the top three ranks to medals.
func TierForRank(rank int) Tier {
	switch rank {
	case 1:
		return TierGold
	case 2:
		return TierSilver
	case 3:
		return TierBronze
	default:
		return TierNone
	}
}

func (t Tier) String() string {
	switch t {
	case TierGold:
		return "gold"
	case TierSilver:
		return "silver"
	case TierBronze:
		return "bronze"
	default:
		return "none"
	}
}

// Color returns the hex colour of the tier, or "" for TierNone.
func (t Tier) Color() string {
	switch t {
	case TierGold:
		return "#fcd34d"
	case TierSilver:
		return "#e2e8f0"
	case TierBronze:
		return "#fdba74"
	default:
		return ""
	}
}
