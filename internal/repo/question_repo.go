// Package repo implements the data persistence layer for questions and
// answers, backed by GORM. This file provides repository functions for
// questions.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only identifier
// validation, CRUD persistence, and error classification (see errors.go).
//
// Functions:
//
//   - CreateQuestion(ctx, db, question) -> *domain.QuestionDetail, error
//     Inserts a new question row with UUID primary key and UTC timestamp.
//
//   - DeleteQuestion(ctx, db, questionUUID) -> error
//     Validates the UUID, then deletes the row. Deleting a missing row is
//     not an error.
//
//   - ListQuestions(ctx, db) -> []domain.QuestionDetail, error
//     Returns all questions in store order.
package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// CreateQuestion inserts a new question row. The identifier and timestamp are
// assigned here, in the store layer, and the returned detail is exactly what
// was persisted.
func CreateQuestion(ctx context.Context, db *gorm.DB, q domain.Question) (*domain.QuestionDetail, error) {
	d := &domain.QuestionDetail{
		QuestionUUID: uuid.NewString(),
		Title:        q.Title,
		Description:  q.Description,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// DeleteQuestion removes the question identified by questionUUID. The
// identifier is validated before any I/O; a malformed value yields
// *InvalidIDError without touching the database. Deleting a row that does
// not exist reports success.
func DeleteQuestion(ctx context.Context, db *gorm.DB, questionUUID string) error {
	if _, err := uuid.Parse(questionUUID); err != nil {
		return &InvalidIDError{Msg: fmt.Sprintf("Could not parse question UUID: %s", questionUUID)}
	}
	return db.WithContext(ctx).
		Where("question_uuid = ?", questionUUID).
		Delete(&domain.QuestionDetail{}).Error
}

// ListQuestions returns all questions. No ordering is imposed beyond what the
// store provides; it returns an empty slice when there are none.
func ListQuestions(ctx context.Context, db *gorm.DB) ([]domain.QuestionDetail, error) {
	var out []domain.QuestionDetail
	err := db.WithContext(ctx).Find(&out).Error
	return out, err
}
