package pg

import (
	"strings"

	internal_errors "github.com/itchan-dev/forum/shared/errors"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

// referenceNotFound turns a foreign key violation on insert into a NotFoundError
// naming the missing parent. Other errors are returned as nil.
func referenceNotFound(err error) error {
	if !sharedpg.IsForeignKeyViolation(err) {
		return nil
	}
	constraint := sharedpg.Constraint(err)
	switch {
	case strings.HasSuffix(constraint, "_owner_fkey"), strings.HasSuffix(constraint, "_liker_fkey"):
		return internal_errors.NotFound("user not found")
	case strings.HasSuffix(constraint, "_thread_id_fkey"):
		return internal_errors.NotFound("thread not found")
	case strings.HasSuffix(constraint, "_comment_id_fkey"):
		return internal_errors.NotFound("comment not found")
	}
	return internal_errors.NotFound("referenced row not found")
}
