package entity

// GameStatus is the coarse lifecycle of an external game
type GameStatus string

// Game statuses
const (
	GameCreated  GameStatus = "created"
	GameStarted  GameStatus = "started"
	GameFinished GameStatus = "finished"
)

// GameResult is what the game service reports for a game.
// Winner is empty for draws and for games that ended without a result.
type GameResult struct {
	Status    GameStatus
	Winner    Color
	RawStatus string
}

// IsTerminal reports whether the game can be settled
func (r GameResult) IsTerminal() bool {
	return r.Status == GameFinished
}

// IsDecisive reports whether one side won
func (r GameResult) IsDecisive() bool {
	return r.IsTerminal() && r.Winner.IsValid()
}

// GameRequest asks the game service to open a game between the acceptor and the creator
type GameRequest struct {
	ChallengedUsername string // the challenge creator
	ClockLimit         int
	Increment          int
	Color              Color // the acceptor's color
}

// GameHandle identifies a created game
type GameHandle struct {
	ID  string
	URL string
}
