package http

import (
	"github.com/example/kyoushitsu/internal/auth"
	"github.com/example/kyoushitsu/internal/database"
)

// RouterConfig carries every dependency the router needs, so NewRouter's
// signature stays flat and tests can swap individual stores.
type RouterConfig struct {
	Database *database.Database
	Version  string

	// Static frontend directory, served at / and /static.
	StaticPath string

	AuthService    *auth.Service
	SessionManager *auth.SessionManager

	ChapterStore      ChapterStore
	VocabularyStore   VocabularyStore
	GrammarStore      GrammarStore
	QuizStore         QuizStore
	ReadingStore      ReadingStore
	ListeningStore    ListeningStore
	QuizAnswerKeys    QuizAnswerKeyStore
	ReadingAnswerKeys ReadingAnswerKeyStore
	AuditStore        AuditStore
}
