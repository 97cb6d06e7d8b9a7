package duel

import "github.com/vovakirdan/snake-duel/internal/core"

// Outcome is the result of a finished duel. Display text belongs to the
// presentation layer.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayer1Wins
	OutcomePlayer2Wins
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayer1Wins:
		return "player1_wins"
	case OutcomePlayer2Wins:
		return "player2_wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// Winner returns the winning player, or 0 for a draw or an unfinished game.
func (o Outcome) Winner() core.PlayerID {
	switch o {
	case OutcomePlayer1Wins:
		return core.Player1
	case OutcomePlayer2Wins:
		return core.Player2
	default:
		return 0
	}
}

// winFor returns the outcome in which p wins.
func winFor(p core.PlayerID) Outcome {
	if p == core.Player1 {
		return OutcomePlayer1Wins
	}
	return OutcomePlayer2Wins
}
