package main

import (
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rehan-adi/Blog-Backend/models"
)

type Server struct {
	config  models.Config
	handler *Handler
}

func NewServer(config models.Config, handler *Handler) *Server {
	return &Server{
		config:  config,
		handler: handler,
	}
}

func InitRoutes(h *Handler, config models.Config) *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "OK")
	})

	r.HandleFunc("/posts", h.GetPostsHandler).Methods("GET")
	r.Handle("/posts", authMiddleware(http.HandlerFunc(h.CreatePostHandler), config)).Methods("POST")
	r.HandleFunc("/posts/category/{categoryId}", h.GetPostsByCategoryHandler).Methods("GET")
	r.HandleFunc("/posts/user/{userId}", h.GetUserPostsHandler).Methods("GET")
	r.HandleFunc("/posts/{postId}", h.GetPostHandler).Methods("GET")
	r.Handle("/posts/{id}", authMiddleware(http.HandlerFunc(h.UpdatePostHandler), config)).Methods("PUT")
	r.Handle("/posts/{id}", authMiddleware(http.HandlerFunc(h.DeletePostHandler), config)).Methods("DELETE")

	r.HandleFunc("/profile/{userId}", h.GetProfileHandler).Methods("GET")

	return r
}

func (s *Server) start() error {
	addr := net.JoinHostPort(s.config.ServerHost, s.config.ServerPort)
	log.Printf("Starting HTTP server on %s", addr)
	srv := &http.Server{
		Addr:    addr,
		Handler: InitRoutes(s.handler, s.config),
	}
	return srv.ListenAndServe()
}
