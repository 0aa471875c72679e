package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/champion-vibes/backend/internal/adapters/memory"
	"github.com/champion-vibes/backend/internal/adapters/rest"
	"github.com/champion-vibes/backend/internal/adapters/riot"
	"github.com/champion-vibes/backend/internal/adapters/spotify"
	"github.com/champion-vibes/backend/internal/adapters/sqlite"
	"github.com/champion-vibes/backend/internal/adapters/youtube"
	"github.com/champion-vibes/backend/internal/auth"
	"github.com/champion-vibes/backend/internal/core/domain"
	"github.com/champion-vibes/backend/internal/core/ports"
	"github.com/champion-vibes/backend/internal/core/services"
	"github.com/champion-vibes/backend/internal/worker"
)

func main() {
	// 1. Configuration (Environment Variables)
	// A local .env is optional; real deployments set the environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN main: loading .env: %v", err)
	}

	spotifyClientID := os.Getenv("SPOTIFY_CLIENT_ID")
	spotifyClientSecret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	if spotifyClientID == "" || spotifyClientSecret == "" {
		log.Fatal("FATAL: SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET environment variables are required")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// 2. Initialize "Driven" Adapters (The Tools)
	// -- Storage Adapter
	storageDriver := os.Getenv("STORAGE_DRIVER")
	if storageDriver == "" {
		storageDriver = "memory"
	}

	var repo ports.PlaylistRepository
	repoCloser := func() error { return nil }

	switch storageDriver {
	case "memory":
		repo = memory.NewRepository()
	case "sqlite":
		dbAdapter, err := sqlite.NewAdapter("champion-vibes.db")
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize database: %v", err)
		}
		repo = dbAdapter
		repoCloser = dbAdapter.Close
	default:
		log.Fatalf("Unknown storage driver: %s", storageDriver)
	}
	defer repoCloser()

	// -- External service adapters
	characters := riot.NewClient(os.Getenv("DDRAGON_BASE_URL"))
	spotifyClient := spotify.NewClient(spotifyClientID, spotifyClientSecret)
	youtubeClient := youtube.NewClient(5)

	// -- OAuth token manager
	tokens := auth.NewManager()
	tokens.RegisterProvider(domain.PlatformSpotify, auth.NewSpotifyProvider(
		spotifyClientID, spotifyClientSecret, baseURL+"/auth/spotify/callback"))
	if googleID, googleSecret := os.Getenv("GOOGLE_CLIENT_ID"), os.Getenv("GOOGLE_CLIENT_SECRET"); googleID != "" && googleSecret != "" {
		tokens.RegisterProvider(domain.PlatformYouTube, auth.NewGoogleProvider(
			googleID, googleSecret, baseURL+"/auth/youtube/callback"))
	} else {
		log.Println("WARN main: GOOGLE_CLIENT_ID not set, YouTube export disabled")
	}

	// 3. Initialize Core Logic (The Driver)
	pool := worker.NewPool(repo, 100)
	pool.Start(2)
	defer pool.Stop()

	generator := services.NewGenerator(characters, spotifyClient, repo, pool)

	exporter := services.NewExporter(tokens)
	exporter.Register(domain.PlatformYouTube, services.NewVideoResolver(youtubeClient), youtubeClient)
	exporter.Register(domain.PlatformSpotify, spotify.NewResolver(), spotify.NewHost())

	// 4. Initialize "Driving" Adapter (The Interface)
	handler := rest.NewHandler(generator, exporter, tokens)

	// 5. Start the Server
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("Champion Vibes API is running on %s", addr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
