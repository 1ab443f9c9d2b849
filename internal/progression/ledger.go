package progression

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"kickup/internal/storage"
)

// Store errors surfaced to the store screen.
var (
	ErrUnknownSkin    = errors.New("progression: unknown skin")
	ErrSkinOwned      = errors.New("progression: skin already owned")
	ErrNotEnoughCoins = errors.New("progression: not enough coins")
)

// Ledger owns the persistent progression state. All mutations follow
// the same shape: update in memory, then write the changed fields
// through to storage asynchronously. In-memory state is authoritative
// for the session; a lost write costs at most the latest increment.
//
// The Ledger is confined to the platform goroutine, like everything
// else around the simulation.
type Ledger struct {
	state  State
	store  *storage.Store // nil disables persistence
	logger *log.Logger
}

// NewLedger creates a ledger with default state. A nil store keeps the
// session fully in memory, which is how the game degrades when the
// database cannot be opened.
func NewLedger(store *storage.Store, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Ledger{
		state:  DefaultState(),
		store:  store,
		logger: logger,
	}
}

// Load pulls every stored field once at startup. Missing or corrupt
// fields fall back to their defaults; load never fails the launch.
func (l *Ledger) Load() {
	if l.store == nil {
		return
	}

	fields, err := l.store.LoadAll()
	if err != nil {
		l.logger.Warn("could not load progression, using defaults", "error", err)
		return
	}

	loadField(fields, keyHighScore, &l.state.HighScore, l.logger)
	loadField(fields, keyCollectedCoins, &l.state.CollectedCoins, l.logger)
	loadField(fields, keyUnlockedSkins, &l.state.UnlockedSkins, l.logger)
	loadField(fields, keySelectedSkin, &l.state.SelectedSkin, l.logger)
	loadField(fields, keyAdsRemoved, &l.state.AdsRemoved, l.logger)
	loadField(fields, keyLeaderboard, &l.state.Leaderboard, l.logger)
	loadField(fields, keyPlayerName, &l.state.PlayerName, l.logger)
	loadField(fields, keyLastLoginDate, &l.state.LastLoginDate, l.logger)
	loadField(fields, keyCurrentStreak, &l.state.CurrentStreak, l.logger)
	loadField(fields, keyTotalGames, &l.state.TotalGamesPlayed, l.logger)

	var rewards []DailyReward
	if loadField(fields, keyDailyRewards, &rewards, l.logger) && len(rewards) == 7 {
		l.state.DailyRewards = rewards
	}

	var stored []Achievement
	if loadField(fields, keyAchievements, &stored, l.logger) {
		l.state.Achievements = mergeAchievements(stored)
	}

	// A deleted or renamed skin id falls back to the default rather
	// than failing.
	if _, ok := SkinByID(l.state.SelectedSkin); !ok {
		l.state.SelectedSkin = DefaultSkinID
	}
	if len(l.state.UnlockedSkins) == 0 {
		l.state.UnlockedSkins = []string{DefaultSkinID}
	}

	l.refreshLeaderboard()
}

// refreshLeaderboard rebuilds the leaderboard from the shared run
// history. The runs table is append-only, so records set by another
// session survive here even though each session caches its own copy of
// the leaderboard field.
func (l *Ledger) refreshLeaderboard() {
	if l.store == nil {
		return
	}

	bests, err := l.store.AllBests()
	if err != nil {
		l.logger.Warn("cannot derive leaderboard from run history", "error", err)
		return
	}
	if len(bests) == 0 {
		return
	}

	entries := make([]LeaderboardEntry, len(bests))
	for i, b := range bests {
		entries[i] = LeaderboardEntry{
			Player:        b.Player,
			BestTimeSecs:  b.BestTimeSecs,
			BestTimeAt:    b.BestTimeAt,
			BestTimeSkin:  b.BestTimeSkin,
			BestCoins:     b.BestCoins,
			BestCoinsAt:   b.BestCoinsAt,
			BestCoinsSkin: b.BestCoinsSkin,
		}
	}
	l.state.Leaderboard = entries
	l.saveField(keyLeaderboard, l.state.Leaderboard)
}

// loadField decodes one JSON field into dst. Returns true only when
// the field was present and parsed.
func loadField[T any](fields map[string]string, key string, dst *T, logger *log.Logger) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logger.Warn("corrupt progression field, using default", "key", key, "error", err)
		return false
	}
	return true
}

// saveField writes one field through to storage, fire-and-forget.
func (l *Ledger) saveField(key string, v any) {
	if l.store == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		l.logger.Warn("cannot encode progression field", "key", key, "error", err)
		return
	}
	l.store.SetAsync(key, string(data))
}

// Snapshot returns a copy of the current progression state for
// rendering. Slices are shared read-only; callers must not mutate.
func (l *Ledger) Snapshot() State {
	return l.state
}

// Coins returns the spendable coin balance.
func (l *Ledger) Coins() int {
	return l.state.CollectedCoins
}

// RunStarted counts a new run and feeds the games-played achievements.
func (l *Ledger) RunStarted() {
	l.state.TotalGamesPlayed++
	l.saveField(keyTotalGames, l.state.TotalGamesPlayed)

	l.grantAchievement(AchFirstTouch, l.state.TotalGamesPlayed)
	l.grantAchievement(AchHatTrick, l.state.TotalGamesPlayed)
	l.grantAchievement(AchVeteran, l.state.TotalGamesPlayed)
}

// CoinCollected credits a coin picked up mid-run. Balances update
// immediately, not at run end.
func (l *Ledger) CoinCollected(value int) {
	l.state.CollectedCoins += value
	l.saveField(keyCollectedCoins, l.state.CollectedCoins)

	l.grantAchievement(AchCollector25, l.state.CollectedCoins)
	l.grantAchievement(AchCollector100, l.state.CollectedCoins)
}

// RunEnded finalizes a finished run: leaderboard bests, high score and
// the survival achievements. Coins were already credited per pickup.
func (l *Ledger) RunEnded(finalScoreSecs, coinsThisRun int, now time.Time) {
	l.submitToLeaderboard(finalScoreSecs, coinsThisRun, now)

	if finalScoreSecs > l.state.HighScore {
		l.state.HighScore = finalScoreSecs
		l.saveField(keyHighScore, l.state.HighScore)
	}

	l.grantAchievement(AchSurvivor10, finalScoreSecs)
	l.grantAchievement(AchSurvivor30, finalScoreSecs)
	l.grantAchievement(AchSurvivor60, finalScoreSecs)

	if l.store != nil {
		if _, err := l.store.SaveRun(storage.RunRecord{
			RunID:     newRunID(),
			Player:    l.state.PlayerName,
			ScoreSecs: finalScoreSecs,
			Coins:     coinsThisRun,
			Skin:      l.state.SelectedSkin,
		}); err != nil {
			l.logger.Warn("cannot record run", "error", err)
		}
		// Fold in records other sessions appended since our last look.
		l.refreshLeaderboard()
	}
}

// grantAchievement submits a sample and credits the reward if the
// achievement just completed.
func (l *Ledger) grantAchievement(id string, sample int) {
	reward := l.updateAchievement(id, sample)
	l.saveField(keyAchievements, l.state.Achievements)
	if reward > 0 {
		l.state.CollectedCoins += reward
		l.saveField(keyCollectedCoins, l.state.CollectedCoins)
		l.logger.Info("achievement unlocked", "id", id, "reward", reward)
	}
}

// submitToLeaderboard updates the current player's entry. Best time and
// best coins advance independently, each stamped with the time and the
// skin in use when the record was set.
func (l *Ledger) submitToLeaderboard(scoreSecs, coins int, now time.Time) {
	entry := l.findOrCreateEntry()

	changed := false
	if scoreSecs > entry.BestTimeSecs {
		entry.BestTimeSecs = scoreSecs
		entry.BestTimeAt = now
		entry.BestTimeSkin = l.state.SelectedSkin
		changed = true
	}
	if coins > entry.BestCoins {
		entry.BestCoins = coins
		entry.BestCoinsAt = now
		entry.BestCoinsSkin = l.state.SelectedSkin
		changed = true
	}
	if changed {
		l.saveField(keyLeaderboard, l.state.Leaderboard)
	}
}

func (l *Ledger) findOrCreateEntry() *LeaderboardEntry {
	for i := range l.state.Leaderboard {
		if l.state.Leaderboard[i].Player == l.state.PlayerName {
			return &l.state.Leaderboard[i]
		}
	}
	l.state.Leaderboard = append(l.state.Leaderboard, LeaderboardEntry{Player: l.state.PlayerName})
	return &l.state.Leaderboard[len(l.state.Leaderboard)-1]
}

// TouchDailyLogin evaluates the daily streak once per calendar day.
// Consecutive days increment the streak; a gap resets it to 1; passing
// day 7 wraps back to 1 and clears every claimed flag for the new
// cycle. Returns true when today's login changed the streak.
func (l *Ledger) TouchDailyLogin(now time.Time) bool {
	today := now.Format(dateLayout)
	if l.state.LastLoginDate == today {
		return false
	}

	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if l.state.LastLoginDate == yesterday {
		l.state.CurrentStreak++
	} else {
		l.state.CurrentStreak = 1
	}

	if l.state.CurrentStreak > 7 {
		l.state.CurrentStreak = 1
		for i := range l.state.DailyRewards {
			l.state.DailyRewards[i].Claimed = false
		}
		l.saveField(keyDailyRewards, l.state.DailyRewards)
	}

	l.state.LastLoginDate = today
	l.saveField(keyLastLoginDate, l.state.LastLoginDate)
	l.saveField(keyCurrentStreak, l.state.CurrentStreak)

	l.grantAchievement(AchStreak7, l.state.CurrentStreak)
	return true
}

// ClaimDailyReward claims the slot for the current streak day. Returns
// the granted coins, or false when the slot is already claimed or the
// streak is empty.
func (l *Ledger) ClaimDailyReward() (int, bool) {
	day := l.state.CurrentStreak
	if day < 1 || day > len(l.state.DailyRewards) {
		return 0, false
	}
	slot := &l.state.DailyRewards[day-1]
	if slot.Claimed {
		return 0, false
	}
	slot.Claimed = true
	l.state.CollectedCoins += slot.Coins
	l.saveField(keyDailyRewards, l.state.DailyRewards)
	l.saveField(keyCollectedCoins, l.state.CollectedCoins)
	return slot.Coins, true
}

// BuySkin purchases a catalog skin with coins.
func (l *Ledger) BuySkin(id string) error {
	skin, ok := SkinByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSkin, id)
	}
	if l.ownsSkin(id) {
		return ErrSkinOwned
	}
	if l.state.CollectedCoins < skin.Cost {
		return ErrNotEnoughCoins
	}

	l.state.CollectedCoins -= skin.Cost
	l.state.UnlockedSkins = append(l.state.UnlockedSkins, id)
	l.saveField(keyCollectedCoins, l.state.CollectedCoins)
	l.saveField(keyUnlockedSkins, l.state.UnlockedSkins)
	return nil
}

// GrantSkin unlocks a skin without spending coins. This is the
// completion hook for the monetization collaborator.
func (l *Ledger) GrantSkin(id string) error {
	if _, ok := SkinByID(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSkin, id)
	}
	if l.ownsSkin(id) {
		return nil
	}
	l.state.UnlockedSkins = append(l.state.UnlockedSkins, id)
	l.saveField(keyUnlockedSkins, l.state.UnlockedSkins)
	return nil
}

// SelectSkin switches the equipped skin. Only owned skins can be
// selected.
func (l *Ledger) SelectSkin(id string) error {
	if !l.ownsSkin(id) {
		return fmt.Errorf("%w: %s", ErrUnknownSkin, id)
	}
	l.state.SelectedSkin = id
	l.saveField(keySelectedSkin, l.state.SelectedSkin)
	return nil
}

func newRunID() string {
	return uuid.NewString()
}

func (l *Ledger) ownsSkin(id string) bool {
	for _, s := range l.state.UnlockedSkins {
		if s == id {
			return true
		}
	}
	return false
}

// SetPlayerName renames the current player. Leaderboard entries keep
// their historical names.
func (l *Ledger) SetPlayerName(name string) {
	if name == "" {
		return
	}
	l.state.PlayerName = name
	l.saveField(keyPlayerName, l.state.PlayerName)
}

// SetAdsRemoved records the ads-removed purchase. Whether it also
// suppresses the watch-ad continue offer is a platform config toggle,
// not a simulation rule.
func (l *Ledger) SetAdsRemoved(removed bool) {
	l.state.AdsRemoved = removed
	l.saveField(keyAdsRemoved, l.state.AdsRemoved)
}
