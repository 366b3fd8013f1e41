// Answer HTTP handlers.
//
// This file exposes REST endpoints for answer resources:
//   - POST   /answer    (create)
//   - GET    /answers   (list for one question; identifier in the JSON body)
//   - DELETE /answer    (delete; identifier in the JSON body)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-qa-backend/internal/domain"
)

// CreateAnswer godoc
// @ID          createAnswer
// @Summary     Create an answer
// @Description Persists an answer to an existing question. A malformed or unknown question UUID is a client error.
// @Tags        Answers
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.Answer  true  "Answer payload"
//
// @Success     201  {object}  domain.AnswerDetail
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid question reference"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /answer [post]
func (h *Handlers) CreateAnswer(c *gin.Context) {
	var a domain.Answer
	if err := c.ShouldBindJSON(&a); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	detail, err := h.answerSvc.Create(c.Request.Context(), a)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	ok(c, http.StatusCreated, detail)
}

// ListAnswers godoc
// @ID          listAnswers
// @Summary     List answers for a question
// @Tags        Answers
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.QuestionID  true  "Question identifier"
//
// @Success     200  {array}   domain.AnswerDetail
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /answers [get]
func (h *Handlers) ListAnswers(c *gin.Context) {
	var id domain.QuestionID
	if err := c.ShouldBindJSON(&id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	answers, err := h.answerSvc.List(c.Request.Context(), id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	ok(c, http.StatusOK, answers)
}

// DeleteAnswer godoc
// @ID          deleteAnswer
// @Summary     Delete an answer
// @Description Removes an answer. Deleting a missing answer succeeds.
// @Tags        Answers
// @Accept      json
//
// @Param       body  body  domain.AnswerID  true  "Answer identifier"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /answer [delete]
func (h *Handlers) DeleteAnswer(c *gin.Context) {
	var id domain.AnswerID
	if err := c.ShouldBindJSON(&id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	if err := h.answerSvc.Delete(c.Request.Context(), id); err != nil {
		renderServiceError(c, err)
		return
	}
	noContent(c)
}
