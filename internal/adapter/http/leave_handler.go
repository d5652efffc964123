package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"polaris-hr-portal/internal/domain/workflow"
	ucLeave "polaris-hr-portal/internal/usecase/leave"
)

const dateLayout = "2006-01-02"

type LeaveHandler struct {
	uc *ucLeave.Usecase
}

func NewLeaveHandler(uc *ucLeave.Usecase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

type createLeaveRequest struct {
	StaffID      string `json:"staff_id" validate:"required,staffid"`
	Title        string `json:"title" validate:"required"`
	Details      string `json:"details" validate:"required"`
	LeaveType    string `json:"leave_type" validate:"required"`
	Reliever     string `json:"reliever" validate:"required"`
	EntitledDays int    `json:"entitled_days" validate:"gte=0"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func (h *LeaveHandler) Create(c echo.Context) error {
	var req createLeaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	dto, err := h.uc.Create(c.Request().Context(), ucLeave.CreateInput{
		RequesterStaffID: req.StaffID,
		Title:            req.Title,
		Details:          req.Details,
		LeaveType:        req.LeaveType,
		Reliever:         req.Reliever,
		EntitledDays:     req.EntitledDays,
		StartDate:        start,
		EndDate:          end,
	})
	if err != nil {
		return c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LeaveHandler) Decide(c echo.Context) error {
	var req decisionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Decide(c.Request().Context(), ucLeave.DecideInput{
		RequestID: c.Param("request_id"),
		StaffID:   req.StaffID,
		Decision:  workflow.Decision(req.Decision),
		Comment:   req.Comment,
	})
	if err != nil {
		return c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LeaveHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if pendingFor := c.QueryParam("pending_for"); pendingFor != "" {
		dtos, err := h.uc.ListPendingFor(ctx, pendingFor)
		if err != nil {
			return c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, dtos)
	}
	if staffID := c.QueryParam("staff_id"); staffID != "" {
		dtos, err := h.uc.ListMine(ctx, staffID)
		if err != nil {
			return c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, dtos)
	}

	dtos, err := h.uc.ListAll(ctx)
	if err != nil {
		return c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LeaveHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}
