package core

// Cue is a fire-and-forget audio trigger emitted by the simulation.
// Consumers never acknowledge cues.
type Cue uint8

const (
	CueShoot Cue = iota
	CuePlayerHit
	CueEnemyHit
	CueCollect
	CueJump
)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CuePlayerHit:
		return "player_hit"
	case CueEnemyHit:
		return "enemy_hit"
	case CueCollect:
		return "collect"
	case CueJump:
		return "jump"
	default:
		return "unknown"
	}
}
