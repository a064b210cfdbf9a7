package main

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"github.com/rehan-adi/Blog-Backend/models"
	"github.com/rehan-adi/Blog-Backend/postRepo"
)

// 10 MB cap on multipart bodies, matching the upstream asset size limit.
const maxUploadSize = 10 << 20

type Handler struct {
	posts    *PostService
	profiles *ProfileService
}

func NewHandler(posts *PostService, profiles *ProfileService) *Handler {
	return &Handler{
		posts:    posts,
		profiles: profiles,
	}
}

func (h *Handler) GetPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListPosts(r.Context())
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

func (h *Handler) GetPostHandler(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.GetPost(r.Context(), mux.Vars(r)["postId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.Response{
		Success: true,
		Data:    post,
		Message: "Post Fetched Successfully",
	})
}

func (h *Handler) GetPostsByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.GetPostsByCategory(r.Context(), mux.Vars(r)["categoryId"])
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

func (h *Handler) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	req := models.CreatePostRequest{Author: callerID(r)}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			writeJSON(w, http.StatusBadRequest, models.Response{
				Success: false,
				Message: "invalid multipart form",
			})
			return
		}
		req.Content = r.FormValue("content")
		req.Category = r.FormValue("category")
		req.Tags = splitTags(r.PostForm["tags"])

		file, header, err := r.FormFile("image")
		if err == nil {
			defer file.Close()
			path, err := saveTempFile(file, header.Filename)
			if err != nil {
				log.Println("Failed to stage uploaded image: ", err.Error())
				writeJSON(w, http.StatusInternalServerError, models.Response{
					Success: false,
					Message: "failed to process uploaded image",
				})
				return
			}
			defer os.Remove(path)
			req.ImagePath = path
		}
	} else {
		var body struct {
			Content  string   `json:"content"`
			Category string   `json:"category"`
			Tags     []string `json:"tags"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, models.Response{
				Success: false,
				Message: "invalid request body",
			})
			return
		}
		req.Content = body.Content
		req.Category = body.Category
		req.Tags = body.Tags
	}

	post, err := h.posts.CreatePost(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, models.Response{
		Success: true,
		Data:    post,
		Message: "Post Created Successfully",
	})
}

func (h *Handler) UpdatePostHandler(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.Response{
			Success: false,
			Message: "invalid request body",
		})
		return
	}
	post, err := h.posts.UpdatePost(r.Context(), mux.Vars(r)["id"], callerID(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.Response{
		Success: true,
		Data:    post,
		Message: "Post Updated Successfully",
	})
}

func (h *Handler) DeletePostHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.posts.DeletePost(r.Context(), id, callerID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.Response{
		Success: true,
		Data:    map[string]string{"id": id},
		Message: "Post Deleted Successfully",
	})
}

func writeJSON(w http.ResponseWriter, status int, resp models.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Println("Error encoding response: ", err.Error())
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, msg := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Println("Request failed: ", err.Error())
	}
	writeJSON(w, status, models.Response{
		Success: false,
		Message: msg,
	})
}

func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrEmptyContent),
		errors.Is(err, ErrEmptyCategory),
		errors.Is(err, ErrInvalidPostID):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, ErrNotPostAuthor):
		return http.StatusForbidden, "you are not the author of this post"
	case errors.Is(err, postRepo.ErrPostNotFound):
		return http.StatusNotFound, "post not found"
	case errors.Is(err, postRepo.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found"
	case errors.Is(err, postRepo.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, ErrImageUpload):
		return http.StatusInternalServerError, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func splitTags(values []string) []string {
	var tags []string
	for _, value := range values {
		for _, tag := range strings.Split(value, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

func saveTempFile(file multipart.File, name string) (string, error) {
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(name))
	if err != nil {
		return "", err
	}
	defer tmp.Close()
	if _, err := io.Copy(tmp, file); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
