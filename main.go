package main

import (
	"context"
	"log"

	"github.com/rehan-adi/Blog-Backend/cachedRepo"
	"github.com/rehan-adi/Blog-Backend/db"
	"github.com/rehan-adi/Blog-Backend/postRepo"
	"github.com/rehan-adi/Blog-Backend/uploader"
)

func main() {
	InitLogger()
	config, err := LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config file: ", err.Error())
	}

	database, err := db.InitDB(config)
	if err != nil {
		log.Fatal("Failed to initialize database connection: ", err.Error())
	}
	defer database.Close()

	repo := postRepo.NewPostgresRepo(database)

	cache, err := cachedRepo.NewRedisRepo(context.Background(), config.CacheHost, config.CachePort, config.CachePassword)
	if err != nil {
		log.Fatal("Failed to connect to cache: ", err.Error())
	}
	defer cache.Close()

	assetUploader, err := uploader.NewCloudinaryUploader(config.CloudinaryURL)
	if err != nil {
		log.Fatal("Failed to initialize asset uploader: ", err.Error())
	}

	postService := NewPostService(repo, cache, assetUploader)
	profileService := NewProfileService(repo, cache)
	server := NewServer(config, NewHandler(postService, profileService))

	log.Fatal(server.start())
}
