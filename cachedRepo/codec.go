package cachedRepo

import (
	"encoding/json"
	"log"

	"github.com/rehan-adi/Blog-Backend/models"
)

// All raw-string serialization of cached values goes through this file.
// A payload that fails to decode is reported as a miss, never as an error.

func EncodePosts(posts []models.Post) (string, error) {
	data, err := json.Marshal(posts)
	if err != nil {
		log.Println("Failed to encode cached post list: ", err.Error())
		return "", err
	}
	return string(data), nil
}

func DecodePosts(raw string) ([]models.Post, bool) {
	var posts []models.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		log.Println("Failed to decode cached post list: ", err.Error())
		return nil, false
	}
	return posts, true
}

func EncodeProfile(profile models.Profile) (string, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		log.Println("Failed to encode cached profile: ", err.Error())
		return "", err
	}
	return string(data), nil
}

func DecodeProfile(raw string) (models.Profile, bool) {
	var profile models.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		log.Println("Failed to decode cached profile: ", err.Error())
		return models.Profile{}, false
	}
	return profile, true
}
