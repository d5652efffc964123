package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	ucAppr "polaris-hr-portal/internal/usecase/appraisal"
)

type AppraisalHandler struct {
	uc *ucAppr.Usecase
}

func NewAppraisalHandler(uc *ucAppr.Usecase) *AppraisalHandler {
	return &AppraisalHandler{uc: uc}
}

type goalPayload struct {
	Objective               string  `json:"objective" validate:"required"`
	CollaboratingDepartment string  `json:"collaborating_department"`
	Weight                  float64 `json:"weight" validate:"gte=0,lte=100"`
	SelfScore               float64 `json:"self_score" validate:"gte=0,lte=5"`
}

type submitAppraisalRequest struct {
	StaffID string        `json:"staff_id" validate:"required,staffid"`
	Period  string        `json:"period" validate:"required"`
	Goals   []goalPayload `json:"goals" validate:"required,min=1,dive"`
}

type reviewAppraisalRequest struct {
	SupervisorScores []float64 `json:"supervisor_scores" validate:"required,min=1,dive,gte=0,lte=5"`
	Comment          string    `json:"comment"`
	Recommendation   string    `json:"recommendation"`
}

func (h *AppraisalHandler) Submit(c echo.Context) error {
	var req submitAppraisalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	goals := make([]ucAppr.GoalInput, 0, len(req.Goals))
	for _, g := range req.Goals {
		goals = append(goals, ucAppr.GoalInput{
			Objective:               g.Objective,
			CollaboratingDepartment: g.CollaboratingDepartment,
			Weight:                  g.Weight,
			SelfScore:               g.SelfScore,
		})
	}

	a, err := h.uc.SubmitSelf(c.Request().Context(), ucAppr.SubmitInput{
		StaffID: req.StaffID,
		Period:  req.Period,
		Goals:   goals,
	})
	if err != nil {
		return c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *AppraisalHandler) Review(c echo.Context) error {
	var req reviewAppraisalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	a, err := h.uc.Review(c.Request().Context(), ucAppr.ReviewInput{
		AppraisalID:      c.Param("appraisal_id"),
		SupervisorScores: req.SupervisorScores,
		Comment:          req.Comment,
		Recommendation:   req.Recommendation,
	})
	if err != nil {
		return c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AppraisalHandler) Get(c echo.Context) error {
	a, err := h.uc.Get(c.Request().Context(), c.Param("appraisal_id"))
	if err != nil {
		return c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, a)
}

// List serves either a staff member's appraisal history or, with
// ?period=, their single appraisal for that period.
func (h *AppraisalHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	staffID := c.QueryParam("staff_id")
	if staffID == "" {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "staff_id query parameter is required"})
	}

	if period := c.QueryParam("period"); period != "" {
		a, err := h.uc.Current(ctx, staffID, period)
		if err != nil {
			return c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, a)
	}

	as, err := h.uc.ListByStaff(ctx, staffID)
	if err != nil {
		return c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, as)
}
