// Package services – QuestionService
//
// This file implements the QuestionService, which coordinates question
// persistence through the QuestionStore capability and translates storage
// failures into the layer's error taxonomy. Each operation invokes exactly
// one store call; there is no fan-out and no cross-request state.
package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// QuestionStore defines the data-access contract required by QuestionService.
// Implementations must be safe for concurrent callers and hold no mutable
// state beyond the underlying connection pool.
type QuestionStore interface {
	// CreateQuestion inserts a new question and returns the persisted record.
	CreateQuestion(ctx context.Context, db *gorm.DB, q domain.Question) (*domain.QuestionDetail, error)

	// DeleteQuestion removes a question by UUID. A missing row is success.
	DeleteQuestion(ctx context.Context, db *gorm.DB, questionUUID string) error

	// ListQuestions returns all questions in store order.
	ListQuestions(ctx context.Context, db *gorm.DB) ([]domain.QuestionDetail, error)
}

// QuestionService exposes the question operations consumed by HTTP handlers.
// Every storage failure is logged with its original cause and surfaced as
// ErrInternal; the question paths never produce a bad-request error.
type QuestionService struct {
	// DB is the GORM handle passed through to the store.
	DB *gorm.DB
	// Store is the question data-access capability.
	Store QuestionStore
}

// NewQuestionService constructs a QuestionService bound to db and store.
func NewQuestionService(db *gorm.DB, store QuestionStore) *QuestionService {
	return &QuestionService{DB: db, Store: store}
}

// Create persists a new question and returns the store-issued record.
func (s *QuestionService) Create(ctx context.Context, q domain.Question) (*domain.QuestionDetail, error) {
	detail, err := s.Store.CreateQuestion(ctx, s.DB, q)
	if err != nil {
		log.Error().Err(err).Msg("create question failed")
		return nil, ErrInternal
	}
	return detail, nil
}

// List returns all questions.
func (s *QuestionService) List(ctx context.Context) ([]domain.QuestionDetail, error) {
	questions, err := s.Store.ListQuestions(ctx, s.DB)
	if err != nil {
		log.Error().Err(err).Msg("list questions failed")
		return nil, ErrInternal
	}
	return questions, nil
}

// Delete removes the question addressed by id. Any failure, including an
// unparseable identifier, is folded into ErrInternal: the question paths do
// not distinguish client mistakes from storage faults.
func (s *QuestionService) Delete(ctx context.Context, id domain.QuestionID) error {
	if err := s.Store.DeleteQuestion(ctx, s.DB, id.QuestionUUID); err != nil {
		log.Error().Err(err).Str("question_uuid", id.QuestionUUID).Msg("delete question failed")
		return ErrInternal
	}
	return nil
}
