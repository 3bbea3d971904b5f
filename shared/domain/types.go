package domain

type (
	UserId   = string
	Username = string

	ThreadId  = string
	CommentId = string
	ReplyId   = string
	LikeId    = string

	ThreadTitle = string
	ThreadBody  = string
	Content     = string
)

// Length limits enforced at entity construction, counted in runes.
const (
	MaxTitleLen   = 150
	MaxBodyLen    = 10_000
	MaxContentLen = 5_000
)

// Tombstones rendered instead of the stored text of soft-deleted content.
const (
	DeletedCommentContent = "this comment was deleted"
	DeletedReplyContent   = "this reply was deleted"
)
