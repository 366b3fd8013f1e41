package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-qa-backend/internal/domain"
	"github.com/tbourn/go-qa-backend/internal/services"
)

func init() { gin.SetMode(gin.TestMode) }

// stubQuestionSvc returns canned results for each operation.
type stubQuestionSvc struct {
	createOut *domain.QuestionDetail
	createErr error
	listOut   []domain.QuestionDetail
	listErr   error
	deleteErr error

	gotDelete domain.QuestionID
}

func (s *stubQuestionSvc) Create(_ context.Context, _ domain.Question) (*domain.QuestionDetail, error) {
	return s.createOut, s.createErr
}

func (s *stubQuestionSvc) List(_ context.Context) ([]domain.QuestionDetail, error) {
	return s.listOut, s.listErr
}

func (s *stubQuestionSvc) Delete(_ context.Context, id domain.QuestionID) error {
	s.gotDelete = id
	return s.deleteErr
}

// stubAnswerSvc returns canned results for each operation.
type stubAnswerSvc struct {
	createOut *domain.AnswerDetail
	createErr error
	listOut   []domain.AnswerDetail
	listErr   error
	deleteErr error

	gotCreate domain.Answer
	gotList   domain.QuestionID
	gotDelete domain.AnswerID
}

func (s *stubAnswerSvc) Create(_ context.Context, a domain.Answer) (*domain.AnswerDetail, error) {
	s.gotCreate = a
	return s.createOut, s.createErr
}

func (s *stubAnswerSvc) List(_ context.Context, id domain.QuestionID) ([]domain.AnswerDetail, error) {
	s.gotList = id
	return s.listOut, s.listErr
}

func (s *stubAnswerSvc) Delete(_ context.Context, id domain.AnswerID) error {
	s.gotDelete = id
	return s.deleteErr
}

// newTestRouter wires the six endpoints straight to the handlers, without the
// middleware chain.
func newTestRouter(q QuestionService, a AnswerService) *gin.Engine {
	h := New(q, a)
	r := gin.New()
	r.POST("/question", h.CreateQuestion)
	r.GET("/questions", h.ListQuestions)
	r.DELETE("/question", h.DeleteQuestion)
	r.POST("/answer", h.CreateAnswer)
	r.GET("/answers", h.ListAnswers)
	r.DELETE("/answer", h.DeleteAnswer)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error envelope: %v (%s)", err, w.Body.String())
	}
	return resp
}

func TestCreateQuestion_Created(t *testing.T) {
	detail := &domain.QuestionDetail{
		QuestionUUID: "141add05-4415-4938-b5a1-17e0d3171aff",
		Title:        "t",
		Description:  "d",
		CreatedAt:    time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
	}
	r := newTestRouter(&stubQuestionSvc{createOut: detail}, &stubAnswerSvc{})

	w := doJSON(t, r, http.MethodPost, "/question", `{"title":"t","description":"d"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201 (%s)", w.Code, w.Body.String())
	}
	var got domain.QuestionDetail
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.QuestionUUID != detail.QuestionUUID || got.Title != "t" {
		t.Fatalf("body = %+v", got)
	}
}

func TestCreateQuestion_InvalidJSON(t *testing.T) {
	r := newTestRouter(&stubQuestionSvc{}, &stubAnswerSvc{})

	for _, body := range []string{"{not json", `{"title":"t"}`, ""} {
		w := doJSON(t, r, http.MethodPost, "/question", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d; want 400", body, w.Code)
		}
		resp := decodeErrorResponse(t, w)
		if resp.Code != ErrCodeBadRequest || resp.Message != "invalid JSON body" {
			t.Fatalf("body %q: envelope = %+v", body, resp)
		}
	}
}

func TestCreateQuestion_ServiceFailure(t *testing.T) {
	r := newTestRouter(&stubQuestionSvc{createErr: services.ErrInternal}, &stubAnswerSvc{})

	w := doJSON(t, r, http.MethodPost, "/question", `{"title":"t","description":"d"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
	resp := decodeErrorResponse(t, w)
	if resp.Code != ErrCodeInternal {
		t.Fatalf("code = %q; want %q", resp.Code, ErrCodeInternal)
	}
	if resp.Message != "Something went wrong! Please try again." {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestListQuestions_OK(t *testing.T) {
	svc := &stubQuestionSvc{listOut: []domain.QuestionDetail{
		{QuestionUUID: "141add05-4415-4938-b5a1-17e0d3171aff", Title: "t", Description: "d"},
	}}
	r := newTestRouter(svc, &stubAnswerSvc{})

	w := doJSON(t, r, http.MethodGet, "/questions", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	var got []domain.QuestionDetail
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 1 || got[0].Title != "t" {
		t.Fatalf("body = %+v", got)
	}
}

func TestListQuestions_ServiceFailure(t *testing.T) {
	r := newTestRouter(&stubQuestionSvc{listErr: services.ErrInternal}, &stubAnswerSvc{})

	w := doJSON(t, r, http.MethodGet, "/questions", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
}

func TestDeleteQuestion_NoContent(t *testing.T) {
	svc := &stubQuestionSvc{}
	r := newTestRouter(svc, &stubAnswerSvc{})

	w := doJSON(t, r, http.MethodDelete, "/question", `{"question_uuid":"141add05-4415-4938-b5a1-17e0d3171aff"}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d; want 204 (%s)", w.Code, w.Body.String())
	}
	if w.Body.Len() != 0 {
		t.Fatalf("204 must carry no body, got %q", w.Body.String())
	}
	if svc.gotDelete.QuestionUUID != "141add05-4415-4938-b5a1-17e0d3171aff" {
		t.Fatalf("service saw id %+v", svc.gotDelete)
	}
}

func TestDeleteQuestion_MissingIdentifier(t *testing.T) {
	r := newTestRouter(&stubQuestionSvc{}, &stubAnswerSvc{})

	w := doJSON(t, r, http.MethodDelete, "/question", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestDeleteQuestion_ServiceFailure(t *testing.T) {
	r := newTestRouter(&stubQuestionSvc{deleteErr: services.ErrInternal}, &stubAnswerSvc{})

	w := doJSON(t, r, http.MethodDelete, "/question", `{"question_uuid":"nope-but-bound"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
	resp := decodeErrorResponse(t, w)
	if resp.Message != "Something went wrong! Please try again." {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestRenderServiceError_WrappedBadRequest(t *testing.T) {
	// errors.As must see through wrapping.
	wrapped := &stubQuestionSvc{
		createErr: fmt.Errorf("create: %w", &services.BadRequestError{Msg: "Invalid question UUID: x"}),
	}
	r := newTestRouter(wrapped, &stubAnswerSvc{})

	w := doJSON(t, r, http.MethodPost, "/question", `{"title":"t","description":"d"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
	resp := decodeErrorResponse(t, w)
	if resp.Message != "Invalid question UUID: x" {
		t.Fatalf("message = %q", resp.Message)
	}
}
