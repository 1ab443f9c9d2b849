// Package progression owns the player's persistent progress: coins,
// skins, achievements, leaderboard, daily streak. The simulation never
// touches this state; the platform forwards simulation events into the
// Ledger, which mutates in memory and writes each changed field through
// to storage.
package progression

import "time"

// Storage field keys. Each logical field is saved independently right
// after its owning mutation.
const (
	keyHighScore      = "high_score"
	keyCollectedCoins = "collected_coins"
	keyUnlockedSkins  = "unlocked_skins"
	keySelectedSkin   = "selected_skin"
	keyAdsRemoved     = "ads_removed"
	keyLeaderboard    = "leaderboard"
	keyPlayerName     = "player_name"
	keyDailyRewards   = "daily_rewards"
	keyLastLoginDate  = "last_login_date"
	keyCurrentStreak  = "current_streak"
	keyAchievements   = "achievements"
	keyTotalGames     = "total_games_played"
)

// dateLayout is the calendar-day format used for streak evaluation.
const dateLayout = "2006-01-02"

// Achievement tracks one goal with monotonic progress. Progress only
// ever increases; completion happens exactly once and its coin reward
// is granted exactly once.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Requirement int    `json:"requirement"`
	Progress    int    `json:"progress"`
	Completed   bool   `json:"completed"`
	Reward      int    `json:"reward"`
}

// LeaderboardEntry is one player's personal bests. The two metrics are
// independent: a run can set a new best coin count without beating the
// best survival time, and vice versa.
type LeaderboardEntry struct {
	Player        string    `json:"player"`
	BestTimeSecs  int       `json:"best_time_secs"`
	BestTimeAt    time.Time `json:"best_time_at"`
	BestTimeSkin  string    `json:"best_time_skin"`
	BestCoins     int       `json:"best_coins"`
	BestCoinsAt   time.Time `json:"best_coins_at"`
	BestCoinsSkin string    `json:"best_coins_skin"`
}

// DailyReward is one slot of the 7-day login cycle.
type DailyReward struct {
	Day     int  `json:"day"` // 1..7
	Coins   int  `json:"coins"`
	Claimed bool `json:"claimed"`
}

// State is the full persistent progression record. Created once at
// first launch, loaded from storage afterwards, mutated incrementally.
type State struct {
	HighScore        int
	CollectedCoins   int
	UnlockedSkins    []string
	SelectedSkin     string
	AdsRemoved       bool
	Leaderboard      []LeaderboardEntry
	PlayerName       string
	DailyRewards     []DailyReward
	LastLoginDate    string
	CurrentStreak    int
	Achievements     []Achievement
	TotalGamesPlayed int
}

// DefaultState returns the documented startup defaults: empty
// collections, zero counters, the classic skin.
func DefaultState() State {
	return State{
		UnlockedSkins: []string{DefaultSkinID},
		SelectedSkin:  DefaultSkinID,
		PlayerName:    "player",
		DailyRewards:  defaultDailyRewards(),
		Achievements:  defaultAchievements(),
	}
}

func defaultDailyRewards() []DailyReward {
	coins := []int{10, 20, 30, 40, 50, 75, 100}
	rewards := make([]DailyReward, len(coins))
	for i, c := range coins {
		rewards[i] = DailyReward{Day: i + 1, Coins: c}
	}
	return rewards
}
