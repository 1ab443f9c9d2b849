// Package monetize defines the hooks the game consumes from an ad or
// payment provider. The core never implements payment logic; it only
// reacts to completion signals to grant the associated in-game effect
// (continue a run, unlock a skin, remove ads).
package monetize

// RewardKind says what a completed rewarded ad pays out.
type RewardKind int

const (
	// RewardContinueRun resumes the current run after a game over.
	RewardContinueRun RewardKind = iota
	// RewardUnlockSkin unlocks a premium skin.
	RewardUnlockSkin
)

// Provider is the external monetization collaborator. Implementations
// call the completion callback exactly once; completed=false means the
// ad was skipped or the purchase was cancelled, and no effect is
// granted.
type Provider interface {
	// RequestRewardedAd plays a rewarded ad and reports completion.
	RequestRewardedAd(kind RewardKind, complete func(completed bool))

	// Purchase runs a real-money purchase for the given item id and
	// reports completion.
	Purchase(itemID string, complete func(completed bool))
}

// StubProvider grants every request immediately. Used for local play,
// where there is no ad network to talk to.
type StubProvider struct{}

// RequestRewardedAd completes instantly.
func (StubProvider) RequestRewardedAd(_ RewardKind, complete func(bool)) {
	complete(true)
}

// Purchase completes instantly.
func (StubProvider) Purchase(_ string, complete func(bool)) {
	complete(true)
}

// Config holds platform toggles around monetization.
type Config struct {
	// OfferContinueWhenAdsRemoved keeps the watch-ad continue offer
	// visible even after the ads-removed purchase. The stored flag's
	// gating effect is a product decision, not a simulation rule.
	OfferContinueWhenAdsRemoved bool `yaml:"offer_continue_when_ads_removed"`
}
