package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caresuite/labops-backend-go/internal/domain/staff"
	"github.com/caresuite/labops-backend-go/internal/handler/http/response"
)

// StaffHandler exposes read-only views of the externally managed staff store.
type StaffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffRepo staff.Repository
}

func NewStaffHandler(staffRepo staff.Repository) StaffHandler {
	return &staffHandlerImpl{staffRepo: staffRepo}
}

func (h *staffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.staffRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]staff.Response, 0, len(members))
	for _, member := range members {
		responses = append(responses, staff.NewResponse(member))
	}

	response.Success(w, responses)
}

func (h *staffHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	member, err := h.staffRepo.GetByID(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, staff.NewResponse(member))
}
