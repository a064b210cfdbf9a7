package main

import "errors"

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrNotPostAuthor   = errors.New("caller is not the post author")
	ErrEmptyContent    = errors.New("post content cannot be empty")
	ErrEmptyCategory   = errors.New("post category cannot be empty")
	ErrInvalidPostID   = errors.New("invalid post id")
	ErrImageUpload     = errors.New("image upload failed")
)
