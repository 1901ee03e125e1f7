package models

// Outcome values
const (
	OutcomeWinner = "winner"
	OutcomeTie    = "tie"
)

// Request types

// ballots[i][j] is the rank voter i gave candidate j
type CreateTallyRequest struct {
	Candidates []string `json:"candidates"`
	Ballots    [][]int  `json:"ballots"`
	Policy     string   `json:"policy,omitempty"`
}

// Response types

type TallyResponse struct {
	TallyID   string           `json:"tally_id"`
	Outcome   string           `json:"outcome"`
	Winners   []string         `json:"winners"`
	Policy    string           `json:"policy"`
	Voters    int              `json:"voters"`
	Exhausted int              `json:"exhausted"`
	ZeroVote  []string         `json:"zero_vote"`
	Rounds    []RoundResult    `json:"rounds"`
	Rejected  []RejectedBallot `json:"rejected"`
}

type RoundResult struct {
	Round      int              `json:"round"`
	Counts     []CandidateVotes `json:"counts"`
	Eliminated []string         `json:"eliminated"`
	Exhausted  int              `json:"exhausted"`
}

type CandidateVotes struct {
	Candidate int    `json:"candidate"`
	Name      string `json:"name"`
	Votes     int    `json:"votes"`
}

// Line is only set for ballots submitted as a ballot file
type RejectedBallot struct {
	Index  int    `json:"index"`
	Line   int    `json:"line,omitempty"`
	Ranks  []int  `json:"ranks"`
	Reason string `json:"reason"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
