// Package repo implements the data persistence layer for questions and
// answers, backed by GORM. This file provides repository functions for
// answers.
//
// Answers reference a question by UUID; the foreign-key constraint on the
// answers table is what detects a reference to a missing question. That
// rejection is classified as *InvalidIDError so callers need no driver
// knowledge (see errors.go).
package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// CreateAnswer inserts a new answer row for the referenced question.
//
// The question UUID is validated before any I/O. If the insert is rejected
// because the question does not exist, the foreign-key violation is folded
// into *InvalidIDError carrying the offending identifier; any other failure
// is returned as-is.
func CreateAnswer(ctx context.Context, db *gorm.DB, a domain.Answer) (*domain.AnswerDetail, error) {
	if _, err := uuid.Parse(a.QuestionUUID); err != nil {
		return nil, &InvalidIDError{Msg: fmt.Sprintf("Could not parse answer UUID: %s", a.QuestionUUID)}
	}

	d := &domain.AnswerDetail{
		AnswerUUID:   uuid.NewString(),
		QuestionUUID: a.QuestionUUID,
		Content:      a.Content,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(d).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, &InvalidIDError{Msg: fmt.Sprintf("Invalid question UUID: %s", a.QuestionUUID)}
		}
		return nil, err
	}
	return d, nil
}

// DeleteAnswer removes the answer identified by answerUUID. The identifier is
// validated before any I/O; deleting a row that does not exist reports
// success.
func DeleteAnswer(ctx context.Context, db *gorm.DB, answerUUID string) error {
	if _, err := uuid.Parse(answerUUID); err != nil {
		return &InvalidIDError{Msg: fmt.Sprintf("Could not parse answer UUID: %s", answerUUID)}
	}
	return db.WithContext(ctx).
		Where("answer_uuid = ?", answerUUID).
		Delete(&domain.AnswerDetail{}).Error
}

// ListAnswers returns all answers belonging to questionUUID, validating the
// identifier exactly as the mutating operations do. It returns an empty slice
// when the question has no answers (or does not exist).
func ListAnswers(ctx context.Context, db *gorm.DB, questionUUID string) ([]domain.AnswerDetail, error) {
	if _, err := uuid.Parse(questionUUID); err != nil {
		return nil, &InvalidIDError{Msg: fmt.Sprintf("Could not parse question with UUID: %s", questionUUID)}
	}
	var out []domain.AnswerDetail
	err := db.WithContext(ctx).
		Where("question_uuid = ?", questionUUID).
		Find(&out).Error
	return out, err
}
