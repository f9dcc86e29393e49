package main

import (
	"context"
	"log"
	"path/filepath"

	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"
	"backend/storage"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("database handle: %v", err)
	}
	defer sqlDB.Close()

	var blobs storage.BlobStore
	staticRoot := ""
	switch cfg.BlobBackend {
	case "s3":
		blobs, err = storage.NewS3Store(context.Background(), cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			log.Fatalf("s3 blob store: %v", err)
		}
	default:
		disk, err := storage.NewDiskStore(cfg.BlobRoot)
		if err != nil {
			log.Fatalf("disk blob store: %v", err)
		}
		blobs = disk
		staticRoot = filepath.Join(disk.Root(), "images")
	}

	bus := services.NewInvalidationBus()
	hub := services.NewFeedHub()
	bus.Subscribe(hub.MealsChanged)

	meals := services.NewMealService(db)
	cache := services.NewListingCache(meals, bus)
	share := services.NewShareService(meals, blobs, bus)

	r := routes.SetupRouter(routes.Deps{
		Meals:           controllers.NewMealController(share, cache),
		Feed:            controllers.NewFeedController(hub),
		StaticImageRoot: staticRoot,
	})
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
