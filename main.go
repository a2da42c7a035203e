package main

import (
	"context"
	"log"

	"favorites-tracker/config"
	"favorites-tracker/favorites"
	"favorites-tracker/handlers"
	"favorites-tracker/settings"
	"favorites-tracker/storage"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg := config.Load()

	store := storage.NewCSVStore(cfg.FavoritesFile)
	manager := favorites.NewManager(store)
	settingsStore := settings.NewStore(cfg.SettingsFile)

	rdb := cfg.NewRedis()
	if rdb != nil {
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Println("Redis unavailable, quote caching disabled:", err)
			rdb = nil
		}
	}

	router := NewRouter(cfg,
		handlers.NewFavorites(manager),
		handlers.NewMarket(rdb, cfg.AlphaVantageKey),
		handlers.NewSettings(settingsStore),
		handlers.NewAuth(cfg.JWTSecret, cfg.PasswordHash),
	)

	log.Println("Favorites file:", store.Path())
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatal("Server error: ", err)
	}
}
