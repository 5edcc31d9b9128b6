package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caresuite/labops-backend-go/internal/domain/deduction"
	"github.com/caresuite/labops-backend-go/internal/handler/http/response"
)

type DeductionHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type deductionHandlerImpl struct {
	deductionService deduction.Service
}

func NewDeductionHandler(deductionService deduction.Service) DeductionHandler {
	return &deductionHandlerImpl{deductionService: deductionService}
}

func (h *deductionHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	var req deduction.AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.StaffID = staffID

	result, err := h.deductionService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction recorded", result)
}

func (h *deductionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	month := r.URL.Query().Get("month")

	result, err := h.deductionService.List(r.Context(), staffID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
