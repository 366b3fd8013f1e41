// Question HTTP handlers.
//
// This file exposes REST endpoints for question resources:
//   - POST   /question    (create)
//   - GET    /questions   (list)
//   - DELETE /question    (delete; identifier travels in the JSON body)
//
// Handlers are transport-thin: they bind JSON, call application services, and
// translate results into HTTP responses. All error mapping lives in the
// service layer; the handlers only render the two allowed shapes.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

//
// Service contracts (context-aware)
//

// QuestionService defines the question operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type QuestionService interface {
	// Create persists a new question and returns the store-issued record.
	Create(ctx context.Context, q domain.Question) (*domain.QuestionDetail, error)
	// List returns all questions.
	List(ctx context.Context) ([]domain.QuestionDetail, error)
	// Delete removes a question by identifier.
	Delete(ctx context.Context, id domain.QuestionID) error
}

// AnswerService defines the answer operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type AnswerService interface {
	// Create persists a new answer for an existing question.
	Create(ctx context.Context, a domain.Answer) (*domain.AnswerDetail, error)
	// List returns all answers belonging to a question.
	List(ctx context.Context, id domain.QuestionID) ([]domain.AnswerDetail, error)
	// Delete removes an answer by identifier.
	Delete(ctx context.Context, id domain.AnswerID) error
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for questions and answers. It depends on
// abstract service interfaces to keep transport concerns separate from the
// request-handling layer.
type Handlers struct {
	questionSvc QuestionService
	answerSvc   AnswerService
}

// New constructs a Handlers instance bound to the given services.
func New(questionSvc QuestionService, answerSvc AnswerService) *Handlers {
	return &Handlers{questionSvc: questionSvc, answerSvc: answerSvc}
}

// CreateQuestion godoc
// @ID          createQuestion
// @Summary     Create a question
// @Description Persists a question and returns the store-issued record with its UUID and timestamp.
// @Tags        Questions
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.Question  true  "Question payload"
//
// @Success     201  {object}  domain.QuestionDetail
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /question [post]
func (h *Handlers) CreateQuestion(c *gin.Context) {
	var q domain.Question
	if err := c.ShouldBindJSON(&q); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	detail, err := h.questionSvc.Create(c.Request.Context(), q)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	ok(c, http.StatusCreated, detail)
}

// ListQuestions godoc
// @ID          listQuestions
// @Summary     List all questions
// @Tags        Questions
// @Produce     json
//
// @Success     200  {array}   domain.QuestionDetail
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /questions [get]
func (h *Handlers) ListQuestions(c *gin.Context) {
	questions, err := h.questionSvc.List(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	ok(c, http.StatusOK, questions)
}

// DeleteQuestion godoc
// @ID          deleteQuestion
// @Summary     Delete a question
// @Description Removes a question (and, via cascade, its answers). Deleting a missing question succeeds.
// @Tags        Questions
// @Accept      json
//
// @Param       body  body  domain.QuestionID  true  "Question identifier"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /question [delete]
func (h *Handlers) DeleteQuestion(c *gin.Context) {
	var id domain.QuestionID
	if err := c.ShouldBindJSON(&id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	if err := h.questionSvc.Delete(c.Request.Context(), id); err != nil {
		renderServiceError(c, err)
		return
	}
	noContent(c)
}
