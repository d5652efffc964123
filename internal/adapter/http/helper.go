package http

import (
	"errors"
	"net/http"

	apprDomain "polaris-hr-portal/internal/domain/appraisal"
	leaveDomain "polaris-hr-portal/internal/domain/leave"
	reqDomain "polaris-hr-portal/internal/domain/requisition"
	staffDomain "polaris-hr-portal/internal/domain/staff"
	"polaris-hr-portal/internal/domain/workflow"
)

// statusForError translates domain errors into HTTP codes. The engine
// and usecases never see HTTP; this is the only place the mapping lives.
func statusForError(err error) int {
	switch {
	case errors.Is(err, reqDomain.ErrValidation),
		errors.Is(err, leaveDomain.ErrValidation),
		errors.Is(err, apprDomain.ErrValidation),
		errors.Is(err, workflow.ErrBadDecision):
		return http.StatusUnprocessableEntity
	case errors.Is(err, workflow.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, workflow.ErrNotPending),
		errors.Is(err, workflow.ErrAlreadyDecided):
		return http.StatusConflict
	case errors.Is(err, reqDomain.ErrNotFound),
		errors.Is(err, leaveDomain.ErrNotFound),
		errors.Is(err, apprDomain.ErrNotFound),
		errors.Is(err, staffDomain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
