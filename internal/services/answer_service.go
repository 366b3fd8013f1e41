// Package services – AnswerService
//
// This file implements the AnswerService. It mirrors QuestionService with one
// deliberate asymmetry: only Create surfaces an invalid question reference as
// a bad request. Delete and List fold every failure, including invalid
// identifiers, into ErrInternal. Keep it that way; applying the bad-request
// mapping uniformly changes the public contract.
package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-qa-backend/internal/domain"
	"github.com/tbourn/go-qa-backend/internal/repo"
)

// AnswerStore defines the data-access contract required by AnswerService.
// Implementations must be safe for concurrent callers and hold no mutable
// state beyond the underlying connection pool.
type AnswerStore interface {
	// CreateAnswer inserts a new answer and returns the persisted record.
	CreateAnswer(ctx context.Context, db *gorm.DB, a domain.Answer) (*domain.AnswerDetail, error)

	// DeleteAnswer removes an answer by UUID. A missing row is success.
	DeleteAnswer(ctx context.Context, db *gorm.DB, answerUUID string) error

	// ListAnswers returns all answers belonging to questionUUID.
	ListAnswers(ctx context.Context, db *gorm.DB, questionUUID string) ([]domain.AnswerDetail, error)
}

// AnswerService exposes the answer operations consumed by HTTP handlers.
type AnswerService struct {
	// DB is the GORM handle passed through to the store.
	DB *gorm.DB
	// Store is the answer data-access capability.
	Store AnswerStore
}

// NewAnswerService constructs an AnswerService bound to db and store.
func NewAnswerService(db *gorm.DB, store AnswerStore) *AnswerService {
	return &AnswerService{DB: db, Store: store}
}

// Create persists a new answer. An invalid or unknown question reference is
// the caller's mistake and comes back as *BadRequestError carrying the
// store's message; any other failure is ErrInternal.
func (s *AnswerService) Create(ctx context.Context, a domain.Answer) (*domain.AnswerDetail, error) {
	detail, err := s.Store.CreateAnswer(ctx, s.DB, a)
	if err != nil {
		log.Error().Err(err).Str("question_uuid", a.QuestionUUID).Msg("create answer failed")
		if repo.IsInvalidID(err) {
			return nil, &BadRequestError{Msg: err.Error()}
		}
		return nil, ErrInternal
	}
	return detail, nil
}

// List returns all answers for the question addressed by id.
func (s *AnswerService) List(ctx context.Context, id domain.QuestionID) ([]domain.AnswerDetail, error) {
	answers, err := s.Store.ListAnswers(ctx, s.DB, id.QuestionUUID)
	if err != nil {
		log.Error().Err(err).Str("question_uuid", id.QuestionUUID).Msg("list answers failed")
		return nil, ErrInternal
	}
	return answers, nil
}

// Delete removes the answer addressed by id. As with question deletion, all
// failures are opaque to the caller.
func (s *AnswerService) Delete(ctx context.Context, id domain.AnswerID) error {
	if err := s.Store.DeleteAnswer(ctx, s.DB, id.AnswerUUID); err != nil {
		log.Error().Err(err).Str("answer_uuid", id.AnswerUUID).Msg("delete answer failed")
		return ErrInternal
	}
	return nil
}
