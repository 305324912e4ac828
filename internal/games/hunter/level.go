package hunter

import "github.com/vovakirdan/monster-hunter/internal/config"

// Phase is the coarse state of the level state machine.
type Phase int

const (
	PhasePlaying  Phase = iota // Monsters spawn, the player fights
	PhaseCleared               // Timed hold before the next level
	PhaseVictory               // Boss defeated or last level cleared; waits for restart
	PhaseGameOver              // Out of lives; world frozen until restart
)

// String returns the phase name reported to the platform.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseCleared:
		return "cleared"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Player-facing messages.
const (
	MsgLevelCleared = "You win! Proceed to next level"
	MsgVictory      = "Congratulations! You won! Press R to restart"
	MsgGameOver     = "Game Over! Press R to restart"
	MsgGuide        = "Press RIGHT to proceed!"
)

// Message is a center-screen banner that stays up for Ticks more ticks.
type Message struct {
	Text  string
	Ticks int
}

// Active reports whether the banner should be drawn.
func (m Message) Active() bool {
	return m.Ticks > 0 && m.Text != ""
}

// Tick counts the banner down by one.
func (m *Message) Tick() {
	if m.Ticks > 0 {
		m.Ticks--
	}
}

// LevelState is the progression bookkeeping of a run.
type LevelState struct {
	Index        int
	Phase        Phase
	BossSpawned  bool
	SpawnTimer   int
	CollectTimer int
	HoldTicks    int // Remaining ticks of the Cleared hold
	Message      Message
	PlayTicks    int // Ticks spent playing this run
	IdleTicks    int // Consecutive ticks idling near the left edge
}

// Restartable reports whether an explicit restart is accepted.
func (l LevelState) Restartable() bool {
	switch l.Phase {
	case PhaseCleared, PhaseVictory, PhaseGameOver:
		return true
	default:
		return false
	}
}

// Current returns the config of the active level.
func (l LevelState) Current(levels []config.LevelConfig) config.LevelConfig {
	return levels[min(l.Index, len(levels)-1)]
}

// IsLast reports whether the active level is the final one.
func (l LevelState) IsLast(levels []config.LevelConfig) bool {
	return l.Index >= len(levels)-1
}

// show replaces the banner.
func (l *LevelState) show(text string, ticks int) {
	l.Message = Message{Text: text, Ticks: ticks}
}

// advance enters the next level with fresh timers.
func (l *LevelState) advance() {
	l.Index++
	l.Phase = PhasePlaying
	l.BossSpawned = false
	l.SpawnTimer = 0
	l.CollectTimer = 0
	l.HoldTicks = 0
	l.Message = Message{}
}
