package core

// PlayerID identifies one of the two duelling snakes.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Unknown"
	}
}

// Other returns the opposing player.
func (p PlayerID) Other() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Steer is a direction-change request for one player, produced by the
// input layer from a key press.
type Steer struct {
	Player PlayerID
	Dir    Direction
}
