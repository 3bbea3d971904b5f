package domain

// Like records that Liker likes a comment. Likes are inserted and deleted, never updated.
type Like struct {
	Id        LikeId
	CommentId CommentId
	Liker     UserId
}

// LikeCounts maps a comment to the number of likes it currently has.
type LikeCounts = map[CommentId]int
