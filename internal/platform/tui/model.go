package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"kickup/internal/monetize"
	"kickup/internal/progression"
	"kickup/internal/sim"
)

// Options configures a TUI run.
type Options struct {
	TickRate int // Simulation ticks per second
	ScreenW  int // Initial terminal size; resizes follow WindowSizeMsg
	ScreenH  int
}

// Model is the Bubble Tea model driving the whole game flow:
// menu, runs, game over and the side screens.
type Model struct {
	session  *sim.Session
	ledger   *progression.Ledger
	provider monetize.Provider
	mcfg     monetize.Config
	logger   *log.Logger
	keys     KeyMapper
	playKeys PlayKeyMap
	menuKeys MenuKeyMap
	help     help.Model

	screen   *Screen
	tickRate int

	menuCursor  int
	storeCursor int
	status      string

	runFinalized bool
	quitting     bool
}

// NewModel wires the simulation session and the progression ledger
// into a playable model.
func NewModel(session *sim.Session, ledger *progression.Ledger, provider monetize.Provider, mcfg monetize.Config, opts Options, logger *log.Logger) Model {
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = sim.TicksPerSecond
	}
	if opts.ScreenW <= 0 {
		opts.ScreenW = 80
	}
	if opts.ScreenH <= 0 {
		opts.ScreenH = 24
	}

	m := Model{
		session:  session,
		ledger:   ledger,
		provider: provider,
		mcfg:     mcfg,
		logger:   logger,
		playKeys: DefaultPlayKeyMap(),
		menuKeys: DefaultMenuKeyMap(),
		help:     help.New(),
		// The bottom terminal row is reserved for the help footer.
		screen:   NewScreen(opts.ScreenW, opts.ScreenH-1),
		tickRate: tickRate,
	}

	if ledger.TouchDailyLogin(time.Now()) {
		m.status = "daily login counted, press c in the menu to claim"
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick advances the simulation one step and forwards the
// resulting events to the ledger.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	events := m.session.Step()
	for _, ev := range events {
		if ev.Kind == sim.EventCoinCollected {
			m.ledger.CoinCollected(ev.Value)
		}
	}

	return m, tickCmd(m.tickRate)
}

// finalizeRun reports the finished run to the ledger. It runs when the
// player leaves the game over screen rather than on the ending event
// itself, so a run extended by watching an ad is reported once, with
// its final totals.
func (m *Model) finalizeRun() {
	if m.runFinalized || m.session.Phase() != sim.PhaseGameOver {
		return
	}
	m.runFinalized = true
	w := m.session.World()
	m.ledger.RunEnded(w.DisplayScore(), w.RunCoins, time.Now())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.session.Phase() {
	case sim.PhasePlaying:
		return m.handlePlayKey(msg)
	case sim.PhaseGameOver:
		return m.handleOverKey(msg)
	case sim.PhaseMenu:
		return m.handleMenuKey(msg)
	case sim.PhaseStore:
		return m.handleStoreKey(msg)
	case sim.PhaseLeaderboard, sim.PhaseAchievements:
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ball := m.session.World().Ball.Position

	switch m.keys.MapPlayKey(msg) {
	case PlayQuit:
		m.quitting = true
		return m, tea.Quit
	case PlayQuitToMenu:
		m.session.ToMenu()
	case PlayTapCenter:
		m.session.Tap(ball.X, 0)
	case PlayTapLeft:
		m.session.Tap(ball.X-tapSideOffset, 0)
	case PlayTapRight:
		m.session.Tap(ball.X+tapSideOffset, 0)
	case PlayPause:
		m.session.TogglePause()
	}
	return m, nil
}

// tapSideOffset places the synthetic keyboard tap clearly on one side
// of the ball so the horizontal kick direction is unambiguous.
const tapSideOffset = 120.0

func (m Model) handleOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapOverKey(msg) {
	case OverQuit:
		m.finalizeRun()
		m.quitting = true
		return m, tea.Quit
	case OverRestart:
		m.startRun()
	case OverWatchAd:
		m.watchAdContinue()
	case OverToMenu:
		m.finalizeRun()
		m.session.ToMenu()
	}
	return m, nil
}

func (m *Model) startRun() {
	m.finalizeRun()
	m.session.StartRun()
	m.ledger.RunStarted()
	m.runFinalized = false
	m.status = ""
}

// watchAdContinue requests a rewarded ad and resumes the run when the
// provider reports completion. The stub provider completes inline.
func (m *Model) watchAdContinue() {
	if !m.session.AdContinueAvailable() {
		m.status = "continue already used this run"
		return
	}
	if m.ledger.Snapshot().AdsRemoved && !m.mcfg.OfferContinueWhenAdsRemoved {
		m.status = "continues are disabled with ads removed"
		return
	}

	m.provider.RequestRewardedAd(monetize.RewardContinueRun, func(ok bool) {
		if !ok {
			m.status = "ad not completed"
			return
		}
		if m.session.ContinueWithAd() {
			m.runFinalized = false
			m.status = ""
		}
	})
}

// menuItems in display order. The cursor indexes into this.
var menuItems = []string{"Play", "Store", "Leaderboard", "Achievements", "Quit"}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapMenuKey(msg) {
	case MenuQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuUp:
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case MenuDown:
		if m.menuCursor < len(menuItems)-1 {
			m.menuCursor++
		}
	case MenuClaimDaily:
		if coins, ok := m.ledger.ClaimDailyReward(); ok {
			m.status = fmt.Sprintf("daily reward claimed: %d coins", coins)
		} else {
			m.status = "no daily reward to claim"
		}
	case MenuSelect:
		switch menuItems[m.menuCursor] {
		case "Play":
			m.startRun()
		case "Store":
			m.session.Navigate(sim.PhaseStore)
		case "Leaderboard":
			m.session.Navigate(sim.PhaseLeaderboard)
		case "Achievements":
			m.session.Navigate(sim.PhaseAchievements)
		case "Quit":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleStoreKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	catalog := progression.SkinCatalog()

	switch m.keys.MapMenuKey(msg) {
	case MenuQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuBack:
		m.session.ToMenu()
	case MenuUp:
		if m.storeCursor > 0 {
			m.storeCursor--
		}
	case MenuDown:
		if m.storeCursor < len(catalog)-1 {
			m.storeCursor++
		}
	case MenuSelect:
		m.storeAction(catalog[m.storeCursor])
	}
	return m, nil
}

// storeAction selects an owned skin, or buys it first. Premium skins
// go through the purchase hook instead of coins.
func (m *Model) storeAction(skin progression.Skin) {
	if err := m.ledger.SelectSkin(skin.ID); err == nil {
		m.status = fmt.Sprintf("selected %s", skin.Name)
		return
	}

	if skin.Premium {
		m.provider.Purchase(skin.ID, func(ok bool) {
			if !ok {
				m.status = "purchase not completed"
				return
			}
			if err := m.ledger.GrantSkin(skin.ID); err != nil {
				m.status = err.Error()
				return
			}
			if err := m.ledger.SelectSkin(skin.ID); err == nil {
				m.status = fmt.Sprintf("unlocked %s", skin.Name)
			}
		})
		return
	}

	if err := m.ledger.BuySkin(skin.ID); err != nil {
		m.status = err.Error()
		return
	}
	if err := m.ledger.SelectSkin(skin.ID); err == nil {
		m.status = fmt.Sprintf("bought %s for %d coins", skin.Name, skin.Cost)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapMenuKey(msg) {
	case MenuQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuBack, MenuSelect:
		m.session.ToMenu()
	}
	return m, nil
}

// handleMouse turns a click on the pitch into a tap at the matching
// world position.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.session.Phase() != sim.PhasePlaying {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	cfg := m.session.Tuning()
	p := projector{
		cellW:  m.screen.Width(),
		cellH:  m.screen.Height() - 1,
		worldW: cfg.ScreenW,
		worldH: cfg.ScreenH,
	}
	wx, wy := p.toWorld(msg.X, msg.Y)
	m.session.Tap(wx, wy)
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return "thanks for playing\n"
	}

	switch m.session.Phase() {
	case sim.PhaseMenu:
		return m.viewMenu()
	case sim.PhaseStore:
		return m.viewStore()
	case sim.PhaseLeaderboard:
		return m.viewLeaderboard()
	case sim.PhaseAchievements:
		return m.viewAchievements()
	case sim.PhasePlaying, sim.PhaseGameOver:
		return m.viewPlay()
	}
	return ""
}

func (m Model) viewPlay() string {
	w := m.session.World()
	cfg := m.session.Tuning()
	snap := m.ledger.Snapshot()

	glyph := '⚽'
	if skin, ok := progression.SkinByID(snap.SelectedSkin); ok {
		glyph = skin.Glyph
	}

	drawWorld(m.screen, w, cfg, glyph)
	drawHUD(m.screen, w, snap.CollectedCoins, snap.HighScore)

	if m.session.Phase() == sim.PhaseGameOver {
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("survived %ds, %d coins", w.DisplayScore(), w.RunCoins),
			"r restart  ·  m menu",
		}
		if m.session.AdContinueAvailable() {
			lines = append(lines, "a watch ad to continue")
		}
		drawCenteredMessage(m.screen, lines...)
	} else if m.session.Paused() {
		drawCenteredMessage(m.screen, "PAUSED", "p to resume")
	}

	return m.screen.String() + "\n" + m.help.View(m.playKeys)
}
