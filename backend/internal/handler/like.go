package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/utils"
)

// ToggleLike likes or unlikes a comment. The response does not say which.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if _, err := h.like.Toggle(r.Context(), chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w)
}
