package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.comment.Create(r.Context(), payload, chi.URLParam(r, "threadId"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.AddedCommentResponse{AddedComment: added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err = h.comment.Delete(r.Context(), chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w)
}
