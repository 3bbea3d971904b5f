package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
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

	added, err := h.reply.Create(r.Context(), payload, chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.AddedReplyResponse{AddedReply: added})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err = h.reply.Delete(r.Context(),
		chi.URLParam(r, "threadId"),
		chi.URLParam(r, "commentId"),
		chi.URLParam(r, "replyId"),
		user.Id,
	)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w)
}
