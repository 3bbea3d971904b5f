package service

import (
	"slices"

	"github.com/itchan-dev/forum/shared/domain"
)

// assembleThread nests replies under their comments and attaches like counts.
// Comments and replies come out oldest first; equal timestamps keep input order.
func assembleThread(header domain.ThreadRow, comments []domain.CommentRow, replies []domain.ReplyRow, likes domain.LikeCounts) (domain.ThreadDetail, error) {
	thread, err := domain.NewThreadDetail(header)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments = slices.Clone(comments)
	slices.SortStableFunc(comments, func(a, b domain.CommentRow) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	replies = slices.Clone(replies)
	slices.SortStableFunc(replies, func(a, b domain.ReplyRow) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	thread.Comments = make([]domain.CommentView, 0, len(comments))
	commentIdx := make(map[domain.CommentId]int, len(comments))
	for _, row := range comments {
		view, err := domain.NewCommentView(row)
		if err != nil {
			return domain.ThreadDetail{}, err
		}
		view.LikeCount = likes[row.Id]
		thread.Comments = append(thread.Comments, view)
		commentIdx[row.Id] = len(thread.Comments) - 1
	}

	for _, row := range replies {
		idx, ok := commentIdx[row.CommentId]
		if !ok {
			continue
		}
		view, err := domain.NewReplyView(row)
		if err != nil {
			return domain.ThreadDetail{}, err
		}
		thread.Comments[idx].Replies = append(thread.Comments[idx].Replies, view)
	}

	return thread, nil
}
