package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rehan-adi/Blog-Backend/models"
)

func (h *Handler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.GetProfile(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.Response{
		Success: true,
		Data:    profile,
		Message: "Profile Fetched Successfully",
	})
}

func (h *Handler) GetUserPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := h.profiles.GetUserPosts(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.Response{
		Success: true,
		Data:    posts,
		Message: "Posts Fetched Successfully",
	})
}
