package ludodto

// Result is the externally visible outcome of a simulation run.
type Result struct {
	SessionID      string       `json:"session_id"`
	Status         string       `json:"status"`
	OccupiedSpaces []string     `json:"occupied_spaces"`
	Seats          []SeatReport `json:"seats"`
}

// SeatReport summarizes one participating seat.
type SeatReport struct {
	Seat      string      `json:"seat"`
	Completed bool        `json:"completed"`
	Pieces    [2]PieceRow `json:"pieces"`
}

// PieceRow is the state of a single piece.
type PieceRow struct {
	Role     string `json:"role"`
	Counter  int    `json:"counter"`
	Location string `json:"location"`
	Square   string `json:"square"`
	Twinned  bool   `json:"twinned"`
}
