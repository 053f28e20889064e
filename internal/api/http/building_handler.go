package http

import (
	"net/http"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/service"
)

type BuildingHandler struct {
	buildingSvc service.BuildingService
	deletionSvc service.DeletionService
}

func NewBuildingHandler(buildingSvc service.BuildingService, deletionSvc service.DeletionService) *BuildingHandler {
	return &BuildingHandler{buildingSvc: buildingSvc, deletionSvc: deletionSvc}
}

func (h *BuildingHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}

	var b domain.Building
	if err := decodeBody(r, &b); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.buildingSvc.Create(r.Context(), actor, &b); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *BuildingHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid building id"})
		return
	}

	var b domain.Building
	if err := decodeBody(r, &b); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	b.ID = id

	if err := h.buildingSvc.Update(r.Context(), actor, &b); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BuildingHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid building id"})
		return
	}

	b, err := h.buildingSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BuildingHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}

	buildings, err := h.buildingSvc.List(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buildings)
}

func (h *BuildingHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid building id"})
		return
	}

	if err := h.buildingSvc.Deactivate(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// CanDelete lets the frontend decide whether to render a delete action at all.
func (h *BuildingHandler) CanDelete(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid building id"})
		return
	}

	canDelete, err := h.deletionSvc.CanDeleteBuilding(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"can_delete": canDelete})
}

// Delete hard-deletes a building when the deletion guard permits it;
// buildings with assignment history return a conflict.
func (h *BuildingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid building id"})
		return
	}

	if err := h.deletionSvc.DeleteBuilding(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
