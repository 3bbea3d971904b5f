package domain

import (
	"time"

	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

// AddThread is a validated request to open a new thread.
type AddThread struct {
	Title ThreadTitle `validate:"max=150"`
	Body  ThreadBody  `validate:"max=10000"`
}

func NewAddThread(p Payload) (AddThread, error) {
	const entity = "AddThread"
	fields, err := p.requireStrings(entity, "title", "body")
	if err != nil {
		return AddThread{}, err
	}
	t := AddThread{
		Title: stripMarkup(fields["title"]),
		Body:  stripMarkup(fields["body"]),
	}
	if t.Title == "" {
		return AddThread{}, internal_errors.Validation(entity, internal_errors.MissingProperty, "title")
	}
	if t.Body == "" {
		return AddThread{}, internal_errors.Validation(entity, internal_errors.MissingProperty, "body")
	}
	if err := checkLimits(entity, t); err != nil {
		return AddThread{}, err
	}
	return t, nil
}

// AddedThread confirms a thread creation.
type AddedThread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Owner UserId      `json:"owner"`
}

func NewAddedThread(id ThreadId, title ThreadTitle, owner UserId) (AddedThread, error) {
	const entity = "AddedThread"
	switch {
	case id == "":
		return AddedThread{}, internal_errors.Validation(entity, internal_errors.MissingProperty, "id")
	case title == "":
		return AddedThread{}, internal_errors.Validation(entity, internal_errors.MissingProperty, "title")
	case owner == "":
		return AddedThread{}, internal_errors.Validation(entity, internal_errors.MissingProperty, "owner")
	}
	return AddedThread{Id: id, Title: title, Owner: owner}, nil
}

// ThreadRow is the thread header as read from storage.
type ThreadRow struct {
	Id        ThreadId
	Title     ThreadTitle
	Body      ThreadBody
	CreatedAt time.Time
	Username  Username
}

// ThreadDetail is the assembled read view of a thread.
type ThreadDetail struct {
	Id       ThreadId      `json:"id"`
	Title    ThreadTitle   `json:"title"`
	Body     ThreadBody    `json:"body"`
	Date     time.Time     `json:"date"`
	Username Username      `json:"username"`
	Comments []CommentView `json:"comments"`
}

func NewThreadDetail(row ThreadRow) (ThreadDetail, error) {
	const entity = "ThreadDetail"
	switch {
	case row.Id == "":
		return ThreadDetail{}, internal_errors.Validation(entity, internal_errors.MissingProperty, "id")
	case row.Title == "":
		return ThreadDetail{}, internal_errors.Validation(entity, internal_errors.MissingProperty, "title")
	case row.Body == "":
		return ThreadDetail{}, internal_errors.Validation(entity, internal_errors.MissingProperty, "body")
	case row.CreatedAt.IsZero():
		return ThreadDetail{}, internal_errors.Validation(entity, internal_errors.MissingProperty, "date")
	case row.Username == "":
		return ThreadDetail{}, internal_errors.Validation(entity, internal_errors.MissingProperty, "username")
	}
	return ThreadDetail{
		Id:       row.Id,
		Title:    row.Title,
		Body:     row.Body,
		Date:     row.CreatedAt,
		Username: row.Username,
		Comments: []CommentView{},
	}, nil
}
