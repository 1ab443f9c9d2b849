package progression

// Achievement IDs. The catalog is fixed; stored progress is merged onto
// it at load so new achievements appear for existing players.
const (
	AchFirstTouch   = "first_touch"
	AchHatTrick     = "hat_trick"
	AchVeteran      = "veteran"
	AchSurvivor10   = "survivor_10"
	AchSurvivor30   = "survivor_30"
	AchSurvivor60   = "survivor_60"
	AchCollector25  = "collector_25"
	AchCollector100 = "collector_100"
	AchStreak7      = "streak_7"
)

func defaultAchievements() []Achievement {
	return []Achievement{
		{ID: AchFirstTouch, Name: "First Touch", Description: "Play your first game", Requirement: 1, Reward: 10},
		{ID: AchHatTrick, Name: "Hat-trick", Description: "Play 3 games", Requirement: 3, Reward: 25},
		{ID: AchVeteran, Name: "Veteran", Description: "Play 50 games", Requirement: 50, Reward: 100},
		{ID: AchSurvivor10, Name: "Quick Feet", Description: "Survive 10 seconds", Requirement: 10, Reward: 20},
		{ID: AchSurvivor30, Name: "Juggler", Description: "Survive 30 seconds", Requirement: 30, Reward: 50},
		{ID: AchSurvivor60, Name: "Maestro", Description: "Survive a full minute", Requirement: 60, Reward: 150},
		{ID: AchCollector25, Name: "Pocket Money", Description: "Collect 25 coins", Requirement: 25, Reward: 25},
		{ID: AchCollector100, Name: "Treasurer", Description: "Collect 100 coins", Requirement: 100, Reward: 75},
		{ID: AchStreak7, Name: "Daily Habit", Description: "Log in 7 days in a row", Requirement: 7, Reward: 200},
	}
}

// updateAchievement submits a progress sample for one achievement.
// Progress is monotonic: progress' = max(progress, sample). Crossing
// the requirement completes the achievement exactly once and returns
// the coin reward to grant; every other call returns 0.
func (l *Ledger) updateAchievement(id string, sample int) (reward int) {
	for i := range l.state.Achievements {
		a := &l.state.Achievements[i]
		if a.ID != id {
			continue
		}
		if sample <= a.Progress {
			return 0
		}
		a.Progress = sample
		if !a.Completed && a.Progress >= a.Requirement {
			a.Completed = true
			return a.Reward
		}
		return 0
	}
	return 0
}

// mergeAchievements overlays stored progress onto the current catalog,
// so renamed descriptions or new entries come from the code while
// progress and completion come from storage.
func mergeAchievements(stored []Achievement) []Achievement {
	merged := defaultAchievements()
	byID := make(map[string]Achievement, len(stored))
	for _, a := range stored {
		byID[a.ID] = a
	}
	for i := range merged {
		if s, ok := byID[merged[i].ID]; ok {
			merged[i].Progress = s.Progress
			merged[i].Completed = s.Completed
		}
	}
	return merged
}
