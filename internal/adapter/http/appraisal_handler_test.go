package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	domain "polaris-hr-portal/internal/domain/appraisal"
	"polaris-hr-portal/internal/testutil/appraisalmock"
	"polaris-hr-portal/internal/testutil/staffmock"
	ucAppr "polaris-hr-portal/internal/usecase/appraisal"

	"github.com/labstack/echo/v4"
)

func newAppraisalHandler(repo *appraisalmock.Repo) *AppraisalHandler {
	usecase := ucAppr.NewUsecase(repo, staffmock.Directory(roster...)).
		WithClock(func() time.Time { return fixedNow })
	return NewAppraisalHandler(usecase)
}

func validSubmitBody() map[string]any {
	return map[string]any{
		"staff_id": "GID/00152",
		"period":   "2026-H1",
		"goals": []map[string]any{
			{"objective": "Close audit findings", "weight": 60, "self_score": 4},
			{"objective": "Vendor onboarding SLA", "collaborating_department": "Admin", "weight": 40, "self_score": 3},
		},
	}
}

func TestSubmitAppraisal_Success(t *testing.T) {
	e := newEchoWithValidator()

	var created *domain.Appraisal
	repo := &appraisalmock.Repo{
		CreateFn: func(ctx context.Context, a *domain.Appraisal) error {
			created = a
			return nil
		},
	}
	h := newAppraisalHandler(repo)

	req := httptest.NewRequest(stdhttp.MethodPost, "/appraisals", mustJSON(validSubmitBody()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	if created == nil {
		t.Fatal("repo.Create not called")
	}
	if created.OverallSelfScore != 3.6 {
		t.Fatalf("overall self score = %v, want 3.6", created.OverallSelfScore)
	}
	if created.Rating != "Not yet rated by supervisor" {
		t.Fatalf("rating = %q", created.Rating)
	}
}

func TestSubmitAppraisal_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := newAppraisalHandler(&appraisalmock.Repo{})

	body := validSubmitBody()
	body["goals"] = []map[string]any{} // empty goal list

	req := httptest.NewRequest(stdhttp.MethodPost, "/appraisals", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func reviewFixture() (*AppraisalHandler, *domain.Appraisal) {
	a := &domain.Appraisal{
		AppraisalID: "appr-1",
		StaffID:     "GID/00152",
		Period:      "2026-H1",
		Goals: domain.GoalList{
			{Objective: "Close audit findings", Weight: 60, SelfScore: 4},
			{Objective: "Vendor onboarding SLA", Weight: 40, SelfScore: 3},
		},
		OverallSelfScore: 3.6,
		Rating:           "Not yet rated by supervisor",
	}
	repo := &appraisalmock.Repo{
		GetByAppraisalIDFn: func(_ context.Context, appraisalID string) (*domain.Appraisal, error) {
			if appraisalID != a.AppraisalID {
				return nil, domain.ErrNotFound
			}
			return a, nil
		},
	}
	return newAppraisalHandler(repo), a
}

func postReview(e *echo.Echo, h *AppraisalHandler, appraisalID string, body map[string]any) *httptest.ResponseRecorder {
	req := httptest.NewRequest(stdhttp.MethodPost, "/appraisals/"+appraisalID+"/review", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("appraisal_id")
	c.SetParamValues(appraisalID)
	_ = h.Review(c)
	return rec
}

func TestReviewAppraisal_Success(t *testing.T) {
	e := newEchoWithValidator()
	h, a := reviewFixture()

	rec := postReview(e, h, "appr-1", map[string]any{
		"supervisor_scores": []float64{5, 4},
		"comment":           "Strong half.",
		"recommendation":    "Promote",
	})
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if a.OverallSupervisorScore != 4.6 || a.Rating != "Outstanding (5)" {
		t.Fatalf("score = %v, rating = %q", a.OverallSupervisorScore, a.Rating)
	}
}

func TestReviewAppraisal_ScoreCountMismatch(t *testing.T) {
	e := newEchoWithValidator()
	h, _ := reviewFixture()

	rec := postReview(e, h, "appr-1", map[string]any{"supervisor_scores": []float64{5}})
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body %s", rec.Code, rec.Body.String())
	}
}

func TestReviewAppraisal_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h, _ := reviewFixture()

	rec := postReview(e, h, "appr-404", map[string]any{"supervisor_scores": []float64{5, 4}})
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListAppraisals_RequiresStaffID(t *testing.T) {
	e := newEchoWithValidator()
	h := newAppraisalHandler(&appraisalmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/appraisals", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
