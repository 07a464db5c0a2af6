// AngelaMos | 2026
// entity.go

package opinion

import (
	"time"
)

const MaxTextLength = 256

type VoteKind string

const (
	VoteFor     VoteKind = "for"
	VoteNeutral VoteKind = "neutral"
	VoteAgainst VoteKind = "against"
)

// voteColumns is the only source of column names interpolated into the
// vote statement.
var voteColumns = map[VoteKind]string{
	VoteFor:     "votes_for",
	VoteNeutral: "votes_neutral",
	VoteAgainst: "votes_against",
}

func (k VoteKind) Valid() bool {
	_, ok := voteColumns[k]
	return ok
}

type Opinion struct {
	ID           int64     `db:"id"`
	Text         string    `db:"text"`
	VotesFor     int64     `db:"votes_for"`
	VotesNeutral int64     `db:"votes_neutral"`
	VotesAgainst int64     `db:"votes_against"`
	VotesTotal   int64     `db:"votes_total"`
	UserID       *int64    `db:"user_id"`
	Username     *string   `db:"username"`
	CreatedAt    time.Time `db:"created_at"`
}

// Tally is the counter tuple of one opinion.
type Tally struct {
	ID           int64 `db:"id"            json:"id"`
	VotesFor     int64 `db:"votes_for"     json:"votes_for"`
	VotesNeutral int64 `db:"votes_neutral" json:"votes_neutral"`
	VotesAgainst int64 `db:"votes_against" json:"votes_against"`
	VotesTotal   int64 `db:"votes_total"   json:"votes_total"`
}

type Stats struct {
	Opinions int   `db:"opinions"`
	Votes    int64 `db:"votes"`
}
