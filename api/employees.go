package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"employee-backend/analytics"
	"employee-backend/domain"
)

type employeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	list, err := h.Employees.List(r.Context())
	if err != nil {
		h.Log.WithError(err).Error("employee list failed")
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.track(r.Context(), analytics.ActionGetEmployees)
	respondJSON(w, http.StatusOK, list)
}

func (h *Handler) addEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Name == "" || req.Email == "" {
		respondError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	e, err := h.Employees.Add(r.Context(), domain.Employee{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		h.Log.WithError(err).Error("employee add failed")
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	// o handler nunca escreve a notificação diretamente; só publica o evento
	h.publishEvent(r.Context(), domain.ChannelEmployeeAdd, e)
	h.track(r.Context(), analytics.ActionAddEmployee)
	respondJSON(w, http.StatusCreated, e)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	e, err := h.Employees.Update(r.Context(), domain.Employee{
		ID:         mux.Vars(r)["id"],
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "employee not found")
			return
		}
		h.Log.WithError(err).Error("employee update failed")
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.publishEvent(r.Context(), domain.ChannelEmployeeUpdate, e)
	h.track(r.Context(), analytics.ActionUpdateEmployee)
	respondJSON(w, http.StatusOK, e)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	e, err := h.Employees.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "employee not found")
			return
		}
		h.Log.WithError(err).Error("employee delete failed")
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.publishEvent(r.Context(), domain.ChannelEmployeeDelete, e)
	h.track(r.Context(), analytics.ActionDeleteEmployee)
	respondJSON(w, http.StatusOK, e)
}
