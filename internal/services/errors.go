// Package services implements the request-handling layer for questions and
// answers. This file defines the two error shapes the layer is allowed to
// surface to transport adapters.
//
// Every storage failure is logged in full at the point the service receives
// it, then folded into exactly one of:
//
//   - *BadRequestError: the caller supplied something it can correct. Only the
//     answer-creation path produces this (an invalid or unknown question
//     reference); see AnswerService.Create.
//   - ErrInternal: everything else. The message is fixed and intentionally
//     opaque so storage internals never leak to clients.
package services

import "errors"

// ErrInternal is the opaque failure surfaced for any storage error that is
// not a client-correctable bad request. The wording is part of the public
// contract.
var ErrInternal = errors.New("Something went wrong! Please try again.")

// BadRequestError carries a client-safe message describing a request the
// caller can correct.
type BadRequestError struct {
	Msg string
}

// Error returns the client-safe message.
func (e *BadRequestError) Error() string { return e.Msg }
