package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
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

	added, err := h.thread.Create(r.Context(), payload, user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.AddedThreadResponse{AddedThread: added})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	thread, err := h.thread.Get(r.Context(), chi.URLParam(r, "threadId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.ThreadResponse{Thread: thread})
}
