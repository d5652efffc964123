package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"polaris-hr-portal/internal/domain/workflow"
	ucReq "polaris-hr-portal/internal/usecase/requisition"
)

type RequisitionHandler struct {
	uc *ucReq.Usecase
}

func NewRequisitionHandler(uc *ucReq.Usecase) *RequisitionHandler {
	return &RequisitionHandler{uc: uc}
}

type createRequisitionRequest struct {
	StaffID        string  `json:"staff_id" validate:"required,staffid"`
	Type           string  `json:"requisition_type" validate:"required,oneof=Opex Capex"`
	Title          string  `json:"title" validate:"required"`
	Details        string  `json:"details" validate:"required"`
	Beneficiary    string  `json:"beneficiary" validate:"required"`
	AccountName    string  `json:"account_name"`
	AccountNo      string  `json:"account_no"`
	Bank           string  `json:"bank"`
	MaterialsCost  float64 `json:"materials_cost" validate:"gte=0,dec2"`
	LabourCost     float64 `json:"labour_cost" validate:"gte=0,dec2"`
	AmountBudgeted float64 `json:"amount_budgeted" validate:"gte=0,dec2"`
	WHTOption      string  `json:"wht_option" validate:"required,oneof=None 5% 10% 15%"`
	DocumentRef    string  `json:"document_ref"`
}

type decisionRequest struct {
	StaffID  string `json:"staff_id" validate:"required,staffid"`
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	Comment  string `json:"comment"`
}

func (h *RequisitionHandler) Create(c echo.Context) error {
	var req createRequisitionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Create(c.Request().Context(), ucReq.CreateInput{
		RequesterStaffID: req.StaffID,
		Type:             req.Type,
		Title:            req.Title,
		Details:          req.Details,
		Beneficiary:      req.Beneficiary,
		AccountName:      req.AccountName,
		AccountNo:        req.AccountNo,
		Bank:             req.Bank,
		MaterialsCost:    req.MaterialsCost,
		LabourCost:       req.LabourCost,
		AmountBudgeted:   req.AmountBudgeted,
		WHTOption:        req.WHTOption,
		DocumentRef:      req.DocumentRef,
	})
	if err != nil {
		return c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RequisitionHandler) Decide(c echo.Context) error {
	var req decisionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Decide(c.Request().Context(), ucReq.DecideInput{
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

// List serves three views off one route: ?pending_for= filters to items
// awaiting the caller's pool, ?staff_id= filters to the caller's own
// submissions, no filter returns everything in submission order.
func (h *RequisitionHandler) List(c echo.Context) error {
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

func (h *RequisitionHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}
