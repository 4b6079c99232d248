package statuses

const (
	StatusRunning  = "running"
	StatusBlackWon = "black_won"
	StatusWhiteWon = "white_won"
	StatusDraw     = "draw"
)

const (
	ModeVsAI    = "vs_ai"
	ModeHotSeat = "hot_seat"
)

// WonBy maps the winning side ("black" or "white") to its final status.
func WonBy(side string) string {
	if side == "black" {
		return StatusBlackWon
	}
	return StatusWhiteWon
}
