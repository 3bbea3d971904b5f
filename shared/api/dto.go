package api

import "github.com/itchan-dev/forum/shared/domain"

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response is the envelope of every json answer.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Response {
	return Response{Status: StatusSuccess, Data: data}
}

// Response DTOs

type AddedThreadResponse struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadResponse struct {
	Thread domain.ThreadDetail `json:"thread"`
}

type AddedCommentResponse struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReplyResponse struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}
