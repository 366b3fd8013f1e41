// Package domain defines the persistence models and wire types for questions
// and answers. Detail types are mapped with GORM and form the durable records
// of the Q&A service; the plain input types carry caller-supplied payloads.
package domain

import "time"

// Question is the caller-supplied payload for creating a question. It carries
// no identifier; the store assigns one on insert.
type Question struct {
	Title       string `json:"title" binding:"required" example:"Newest database"`
	Description string `json:"description" binding:"required" example:"What database is best for a read-heavy workload?"`
}

// QuestionDetail is the store-issued record for a question. It is created
// exactly once, never mutated, and removed only by an explicit delete.
//
// Fields:
//   - QuestionUUID: stable UUID primary key (char(36)), assigned by the store.
//   - Title / Description: copied verbatim from the Question input.
//   - CreatedAt: UTC insertion timestamp, assigned by the store.
type QuestionDetail struct {
	QuestionUUID string    `json:"question_uuid" gorm:"type:char(36);primaryKey;column:question_uuid"`
	Title        string    `json:"title"         gorm:"type:varchar(255);not null"`
	Description  string    `json:"description"   gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for QuestionDetail.
func (QuestionDetail) TableName() string { return "questions" }

// QuestionID wraps a caller-supplied question identifier used to address
// delete and answer-listing operations.
type QuestionID struct {
	QuestionUUID string `json:"question_uuid" binding:"required" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// Answer is the caller-supplied payload for creating an answer. QuestionUUID
// must reference an existing question; the store enforces the relationship.
type Answer struct {
	QuestionUUID string `json:"question_uuid" binding:"required" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Content      string `json:"content" binding:"required" example:"Depends on the access pattern."`
}

// AnswerDetail is the store-issued record for an answer.
//
// Fields:
//   - AnswerUUID: UUID primary key (char(36)), assigned by the store.
//   - QuestionUUID: foreign key to the answered question; answers are
//     cascade-deleted when their question is removed.
//   - Content: copied verbatim from the Answer input.
//   - CreatedAt: UTC insertion timestamp, assigned by the store.
type AnswerDetail struct {
	AnswerUUID   string    `json:"answer_uuid"   gorm:"type:char(36);primaryKey;column:answer_uuid"`
	QuestionUUID string    `json:"question_uuid" gorm:"type:char(36);not null;index;column:question_uuid"`
	Content      string    `json:"content"       gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at"`

	// Question is the parent record. The FK constraint is what turns an
	// insert against a missing question into an integrity violation.
	Question QuestionDetail `json:"-" gorm:"foreignKey:QuestionUUID;references:QuestionUUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for AnswerDetail.
func (AnswerDetail) TableName() string { return "answers" }

// AnswerID wraps a caller-supplied answer identifier used to address delete
// operations.
type AnswerID struct {
	AnswerUUID string `json:"answer_uuid" binding:"required" example:"7cd3f1e2-89ab-4ef0-a1b2-3c4d5e6f7890"`
}
