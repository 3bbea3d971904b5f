package domain

import "time"

// AddedReply confirms a reply creation.
type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content Content `json:"content"`
	Owner   UserId  `json:"owner"`
}

func NewAddedReply(id ReplyId, content Content, owner UserId) (AddedReply, error) {
	if err := requireAdded("AddedReply", id, content, owner); err != nil {
		return AddedReply{}, err
	}
	return AddedReply{Id: id, Content: content, Owner: owner}, nil
}

// ReplyRow is a reply as read from storage.
type ReplyRow struct {
	Id        ReplyId
	CommentId CommentId
	Content   Content
	Username  Username
	CreatedAt time.Time
	IsDeleted bool
}

// ReplyView is a reply as shown to readers.
type ReplyView struct {
	Id       ReplyId   `json:"id"`
	Content  Content   `json:"content"`
	Date     time.Time `json:"date"`
	Username Username  `json:"username"`
}

func NewReplyView(row ReplyRow) (ReplyView, error) {
	if err := requireView("ReplyView", row.Id, row.Content, row.Username, row.CreatedAt); err != nil {
		return ReplyView{}, err
	}
	content := row.Content
	if row.IsDeleted {
		content = DeletedReplyContent
	}
	return ReplyView{
		Id:       row.Id,
		Content:  content,
		Date:     row.CreatedAt,
		Username: row.Username,
	}, nil
}
