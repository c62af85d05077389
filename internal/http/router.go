package http

import (
	"github.com/gin-gonic/gin"

	"github.com/example/kyoushitsu/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Chapter content reads are public; everything that writes, plus the
// answer-bearing reads, sits behind the admin session.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// Session runs before anything that reads or writes the admin flag
	router.Use(cfg.SessionManager.SessionLoadSave())

	if cfg.AuditStore != nil {
		router.Use(AuditMiddleware(cfg.AuditStore))
	}

	m := auth.NewMiddleware(cfg.SessionManager)
	admin := m.RequireAPI()

	authController := auth.NewController(cfg.AuthService, cfg.SessionManager)
	authController.RegisterRoutes(router)

	health := NewHealthController(cfg.Database, cfg.Version)
	chaptersController := NewChaptersController(cfg.ChapterStore)
	vocabController := NewVocabularyController(cfg.VocabularyStore)
	grammarController := NewGrammarController(cfg.GrammarStore)
	quizzesController := NewQuizzesController(cfg.QuizStore)
	readingController := NewReadingController(cfg.ReadingStore)
	listeningController := NewListeningController(cfg.ListeningStore)
	scoringController := NewScoringController(cfg.QuizAnswerKeys, cfg.ReadingAnswerKeys)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Chapter endpoints
	router.GET("/api/chapters", chaptersController.ListChapters)
	router.POST("/api/chapters", admin, chaptersController.CreateChapter)
	router.PUT("/api/chapters/:id", admin, chaptersController.UpdateChapter)
	router.DELETE("/api/chapters/:id", admin, chaptersController.DeleteChapter)

	// Vocabulary endpoints
	router.GET("/api/vocabularies/:chapterId", vocabController.ListByChapter)
	router.GET("/api/vocabulary/:id", admin, vocabController.GetVocabulary)
	router.POST("/api/vocabularies", admin, vocabController.CreateVocabulary)
	router.PUT("/api/vocabularies/:id", admin, vocabController.UpdateVocabulary)
	router.DELETE("/api/vocabularies/:id", admin, vocabController.DeleteVocabulary)

	// Grammar endpoints
	router.GET("/api/grammar/:chapterId", grammarController.ListByChapter)
	router.GET("/api/grammar/entry/:id", admin, grammarController.GetEntry)
	router.POST("/api/grammar", admin, grammarController.CreateGrammar)
	router.POST("/api/grammar/reorder", admin, grammarController.Reorder)
	router.PUT("/api/grammar/:id", admin, grammarController.UpdateGrammar)
	router.DELETE("/api/grammar/:id", admin, grammarController.DeleteGrammar)

	// Quiz endpoints
	router.GET("/api/quizzes/:chapterId", quizzesController.ListByChapter)
	router.GET("/api/admin/quizzes/:chapterId", admin, quizzesController.ListByChapterAdmin)
	router.GET("/api/quiz/entry/:id", admin, quizzesController.GetEntry)
	router.POST("/api/quizzes", admin, quizzesController.CreateQuiz)
	router.PUT("/api/quizzes/:id", admin, quizzesController.UpdateQuiz)
	router.DELETE("/api/quizzes/:id", admin, quizzesController.DeleteQuiz)

	// Reading endpoints
	router.GET("/api/reading/:chapterId", readingController.ListByChapter)
	router.GET("/api/admin/reading/:chapterId", admin, readingController.ListByChapterAdmin)
	router.GET("/api/reading/passage/:id", admin, readingController.GetPassage)
	router.POST("/api/reading/passage", admin, readingController.CreatePassage)
	router.PUT("/api/reading/passage/:id", admin, readingController.UpdatePassage)
	router.DELETE("/api/reading/passage/:id", admin, readingController.DeletePassage)

	// Listening endpoints
	router.GET("/api/listening/:chapterId", listeningController.ListByChapter)
	router.GET("/api/admin/listening/:chapterId", admin, listeningController.ListByChapter)
	router.GET("/api/listening/entry/:id", admin, listeningController.GetEntry)
	router.POST("/api/listening", admin, listeningController.CreateListening)
	router.PUT("/api/listening/:id", admin, listeningController.UpdateListening)
	router.DELETE("/api/listening/:id", admin, listeningController.DeleteListening)

	// Scoring endpoints: anonymous, stateless
	router.POST("/api/submit-quiz/:chapterId", scoringController.SubmitQuiz)
	router.POST("/api/submit-reading/:chapterId", scoringController.SubmitReading)

	// Audit trail
	if cfg.AuditStore != nil {
		auditController := NewAuditController(cfg.AuditStore)
		router.GET("/api/admin/audit", admin, auditController.ListEvents)
	}

	// Static frontend
	router.Static("/static", cfg.StaticPath)
	uiController := NewUIController(cfg.StaticPath, cfg.SessionManager)
	uiController.RegisterRoutes(router, m)

	return router
}
