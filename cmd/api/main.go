package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/adesai/chatwave/backend/internal/config"
	"github.com/adesai/chatwave/backend/internal/handler"
	chatModel "github.com/adesai/chatwave/backend/internal/model/chat"
	"github.com/adesai/chatwave/backend/internal/model/profile"
	"github.com/adesai/chatwave/backend/internal/service/ai"
	chatService "github.com/adesai/chatwave/backend/internal/service/chat"
	"github.com/adesai/chatwave/backend/internal/store/media"
	"github.com/adesai/chatwave/backend/internal/ws"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	chatStore := chatModel.NewMemoryStore(chatModel.Seed())
	prefs := profile.NewStore()

	var mediaStore media.Store
	if cfg.Media.DBPath != "" {
		sqliteStore, err := media.NewSQLiteStore(cfg.Media.DBPath)
		if err != nil {
			log.Fatalf("failed to open media store: %v", err)
		}
		defer sqliteStore.Close()
		mediaStore = sqliteStore
		log.Printf("media store backed by %s", cfg.Media.DBPath)
	} else {
		mediaStore = media.NewMemoryStore()
		log.Println("MEDIA_DB_PATH not set, keeping attachments in memory")
	}

	var generator ai.Generator
	if cfg.AI.Enabled() {
		generator, err = newGenerator(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without AI responses - check the provider environment variables")
		} else {
			log.Printf("AI service initialized with provider %s", cfg.AI.Provider)
		}
	} else {
		log.Println("AI credentials not configured, personas will stay silent")
	}

	hub := ws.NewHub()
	go hub.Run()

	chatSvc := chatService.NewService(chatService.Deps{
		Chats:          chatStore,
		Prefs:          prefs,
		Media:          mediaStore,
		Generator:      generator,
		Notifier:       hub,
		RequestTimeout: cfg.AI.RequestTimeout,
	})

	router := handler.NewRouter(chatSvc, prefs, mediaStore, hub)

	startServer(ctx, cfg.Server, router)
}

func newGenerator(ctx context.Context, cfg config.AIConfig) (ai.Generator, error) {
	if cfg.Provider == config.ProviderGemini {
		return ai.NewGeminiService(ctx, cfg)
	}
	return ai.NewArkService(ctx, cfg)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Chatwave backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
