// Package entrypoint wires the application together and runs the server.
package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/kyoushitsu/internal/auth"
	"github.com/example/kyoushitsu/internal/config"
	"github.com/example/kyoushitsu/internal/database"
	auditrepo "github.com/example/kyoushitsu/internal/database/audit"
	"github.com/example/kyoushitsu/internal/database/chapters"
	"github.com/example/kyoushitsu/internal/database/grammar"
	"github.com/example/kyoushitsu/internal/database/listening"
	"github.com/example/kyoushitsu/internal/database/quizzes"
	"github.com/example/kyoushitsu/internal/database/reading"
	"github.com/example/kyoushitsu/internal/database/vocabulary"
	http_controllers "github.com/example/kyoushitsu/internal/http"
	"github.com/example/kyoushitsu/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Kyoushitsu v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// The application refuses to start without admin credentials, since
	// every content mutation goes through the session gate.
	authService, err := auth.NewService(cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize auth: %v (set ADMIN_USERNAME and ADMIN_PASSWORD)", err)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessionManager, err := auth.NewSessionManager(sqlDB, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	chapterRepo := chapters.NewRepository(db.DB)
	vocabRepo := vocabulary.NewRepository(db.DB)
	grammarRepo := grammar.NewRepository(db.DB)
	quizRepo := quizzes.NewRepository(db.DB)
	readingRepo := reading.NewRepository(db.DB)
	listeningRepo := listening.NewRepository(db.DB)
	auditRepo := auditrepo.NewRepository(db.DB)

	auditCleanup := scheduler.NewAuditCleanupScheduler(auditRepo, cfg.Audit)
	if err := auditCleanup.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start audit cleanup scheduler: %v", err)
	}

	routerCfg := http_controllers.RouterConfig{
		Database:          db,
		Version:           version,
		StaticPath:        cfg.UI.StaticPath,
		AuthService:       authService,
		SessionManager:    sessionManager,
		ChapterStore:      chapterRepo,
		VocabularyStore:   vocabRepo,
		GrammarStore:      grammarRepo,
		QuizStore:         quizRepo,
		ReadingStore:      readingRepo,
		ListeningStore:    listeningRepo,
		QuizAnswerKeys:    quizRepo,
		ReadingAnswerKeys: readingRepo,
		AuditStore:        auditRepo,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		auditCleanup.Stop()
	}

	Serve(router, cfg, onShutdown)
}
