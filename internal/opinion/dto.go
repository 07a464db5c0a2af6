// AngelaMos | 2026
// dto.go

package opinion

import (
	"time"
)

type CreateOpinionRequest struct {
	Text     string `json:"text"     validate:"required"`
	UserID   int64  `json:"userId"   validate:"required,gt=0"`
	Username string `json:"username" validate:"required,max=100"`
}

type VoteRequest struct {
	Type string `json:"type" validate:"required"`
}

type UpdateOpinionRequest struct {
	Text string `json:"text" validate:"required"`
}

type OpinionResponse struct {
	ID           int64     `json:"id"`
	Text         string    `json:"text"`
	VotesFor     int64     `json:"votes_for"`
	VotesNeutral int64     `json:"votes_neutral"`
	VotesAgainst int64     `json:"votes_against"`
	VotesTotal   int64     `json:"votes_total"`
	UserID       *int64    `json:"user_id"`
	Username     *string   `json:"username"`
	CreatedAt    time.Time `json:"created_at"`
}

type OpinionListResponse struct {
	Opinions []OpinionResponse `json:"opinions"`
}

type CreatedResponse struct {
	Message   string `json:"message"`
	OpinionID int64  `json:"opinionId"`
}

type VoteResponse struct {
	Opinion Tally `json:"opinion"`
}

func ToOpinionResponse(o *Opinion) OpinionResponse {
	return OpinionResponse{
		ID:           o.ID,
		Text:         o.Text,
		VotesFor:     o.VotesFor,
		VotesNeutral: o.VotesNeutral,
		VotesAgainst: o.VotesAgainst,
		VotesTotal:   o.VotesTotal,
		UserID:       o.UserID,
		Username:     o.Username,
		CreatedAt:    o.CreatedAt,
	}
}

func ToOpinionResponseList(opinions []Opinion) []OpinionResponse {
	responses := make([]OpinionResponse, 0, len(opinions))
	for _, o := range opinions {
		responses = append(responses, ToOpinionResponse(&o))
	}
	return responses
}
