package entities

import (
	"gorm.io/datatypes"
)

// Chapter is the top-level content grouping. All other content entities
// belong to exactly one chapter and are removed together with it.
type Chapter struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:512;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	Vocabularies       []Vocabulary        `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"-"`
	GrammarPatterns    []GrammarPattern    `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"-"`
	Quizzes            []Quiz              `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"-"`
	ReadingPassages    []ReadingPassage    `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"-"`
	ListeningExercises []ListeningExercise `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Chapter) TableName() string {
	return "chapters"
}

type Vocabulary struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ChapterID uint   `gorm:"index;not null" json:"chapter_id"`
	Term      string `gorm:"size:512;not null" json:"term"`
	Meaning   string `gorm:"size:1024;not null" json:"meaning"`
	ImageURL  string `gorm:"size:2048" json:"image_url,omitempty"`
}

func (Vocabulary) TableName() string {
	return "vocabularies"
}

// GrammarPattern carries an explicit display position within its chapter.
// SortOrder is the only system-maintained field: appends take the next free
// position, reorders rewrite positions from a caller-supplied id list.
// Uniqueness within a chapter is intended but not enforced; listings break
// ties by id.
type GrammarPattern struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	ChapterID   uint                        `gorm:"index;not null" json:"chapter_id"`
	Pattern     string                      `gorm:"size:512" json:"pattern"`
	Explanation string                      `gorm:"type:text" json:"explanation"`
	Example     string                      `gorm:"type:text" json:"example"`
	ImageURLs   datatypes.JSONSlice[string] `json:"image_urls"`
	SortOrder   int                         `gorm:"index" json:"sort_order"`
}

func (GrammarPattern) TableName() string {
	return "grammar_patterns"
}

type Quiz struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ChapterID     uint   `gorm:"index;not null" json:"chapter_id"`
	Question      string `gorm:"type:text" json:"question"`
	OptionA       string `gorm:"size:1024" json:"option_a"`
	OptionB       string `gorm:"size:1024" json:"option_b"`
	OptionC       string `gorm:"size:1024" json:"option_c"`
	OptionD       string `gorm:"size:1024" json:"option_d"`
	CorrectAnswer string `gorm:"size:1" json:"correct_answer"`
	AnswerSummary string `gorm:"type:text" json:"answer_summary,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

type ReadingPassage struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ChapterID      uint   `gorm:"index;not null" json:"chapter_id"`
	PassageContent string `gorm:"type:text" json:"passage_content"`

	Questions []ReadingQuestion `gorm:"foreignKey:PassageID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ReadingPassage) TableName() string {
	return "reading_passages"
}

type ReadingQuestion struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	PassageID     uint   `gorm:"index;not null" json:"passage_id"`
	QuestionText  string `gorm:"type:text" json:"question_text"`
	OptionA       string `gorm:"size:1024" json:"option_a"`
	OptionB       string `gorm:"size:1024" json:"option_b"`
	OptionC       string `gorm:"size:1024" json:"option_c"`
	OptionD       string `gorm:"size:1024" json:"option_d"`
	CorrectAnswer string `gorm:"size:1" json:"correct_answer"`
}

func (ReadingQuestion) TableName() string {
	return "reading_questions"
}

type ListeningExercise struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	ChapterID   uint                        `gorm:"index;not null" json:"chapter_id"`
	Title       string                      `gorm:"size:512" json:"title"`
	Description string                      `gorm:"type:text" json:"description"`
	ImageURL    string                      `gorm:"size:2048" json:"image_url,omitempty"`
	AudioURLs   datatypes.JSONSlice[string] `json:"audio_urls"`
	Script      string                      `gorm:"type:text" json:"script"`
}

func (ListeningExercise) TableName() string {
	return "listening_exercises"
}
