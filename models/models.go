package models

import "time"

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBName     string
	DBPassword string

	CacheHost     string
	CachePort     string
	CachePassword string

	ServerHost string
	ServerPort string

	JWTPublicKey []byte

	CloudinaryURL string
}

type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Bio            string `json:"bio,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    User      `json:"author"`
	Image     *string   `json:"image"`
	Tags      []string  `json:"tags,omitempty"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

type Profile struct {
	User      User `json:"user"`
	PostCount int  `json:"postCount"`
}

type CreatePostRequest struct {
	Content   string
	Category  string
	Tags      []string
	Author    string
	ImagePath string
}

type UpdatePostRequest struct {
	Content string   `json:"content"`
	Image   *string  `json:"image,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}
