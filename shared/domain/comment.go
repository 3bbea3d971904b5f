package domain

import (
	"time"

	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

// AddComment is a validated request to post a comment or a reply.
type AddComment struct {
	Content Content `validate:"max=5000"`
}

func NewAddComment(p Payload) (AddComment, error) {
	const entity = "AddComment"
	fields, err := p.requireStrings(entity, "content")
	if err != nil {
		return AddComment{}, err
	}
	c := AddComment{Content: stripMarkup(fields["content"])}
	if c.Content == "" {
		return AddComment{}, internal_errors.Validation(entity, internal_errors.MissingProperty, "content")
	}
	if err := checkLimits(entity, c); err != nil {
		return AddComment{}, err
	}
	return c, nil
}

// AddedComment confirms a comment creation.
type AddedComment struct {
	Id      CommentId `json:"id"`
	Content Content   `json:"content"`
	Owner   UserId    `json:"owner"`
}

func NewAddedComment(id CommentId, content Content, owner UserId) (AddedComment, error) {
	if err := requireAdded("AddedComment", id, content, owner); err != nil {
		return AddedComment{}, err
	}
	return AddedComment{Id: id, Content: content, Owner: owner}, nil
}

// CommentRow is a comment as read from storage, stored content included.
type CommentRow struct {
	Id        CommentId
	ThreadId  ThreadId
	Content   Content
	Username  Username
	CreatedAt time.Time
	IsDeleted bool
}

// CommentView is a comment as shown to readers.
type CommentView struct {
	Id        CommentId   `json:"id"`
	Username  Username    `json:"username"`
	Date      time.Time   `json:"date"`
	Content   Content     `json:"content"`
	LikeCount int         `json:"likeCount"`
	Replies   []ReplyView `json:"replies"`
}

// NewCommentView builds the reader projection of a comment.
// Deleted comments keep their stored text in the database but never show it.
func NewCommentView(row CommentRow) (CommentView, error) {
	if err := requireView("CommentView", row.Id, row.Content, row.Username, row.CreatedAt); err != nil {
		return CommentView{}, err
	}
	content := row.Content
	if row.IsDeleted {
		content = DeletedCommentContent
	}
	return CommentView{
		Id:        row.Id,
		Username:  row.Username,
		Date:      row.CreatedAt,
		Content:   content,
		LikeCount: 0,
		Replies:   []ReplyView{},
	}, nil
}

func requireAdded(entity, id, content, owner string) error {
	switch {
	case id == "":
		return internal_errors.Validation(entity, internal_errors.MissingProperty, "id")
	case content == "":
		return internal_errors.Validation(entity, internal_errors.MissingProperty, "content")
	case owner == "":
		return internal_errors.Validation(entity, internal_errors.MissingProperty, "owner")
	}
	return nil
}

func requireView(entity, id, content, username string, date time.Time) error {
	switch {
	case id == "":
		return internal_errors.Validation(entity, internal_errors.MissingProperty, "id")
	case content == "":
		return internal_errors.Validation(entity, internal_errors.MissingProperty, "content")
	case username == "":
		return internal_errors.Validation(entity, internal_errors.MissingProperty, "username")
	case date.IsZero():
		return internal_errors.Validation(entity, internal_errors.MissingProperty, "date")
	}
	return nil
}
