package http

import (
	"net/http"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/service"
)

type RoomHandler struct {
	roomSvc     service.RoomService
	deletionSvc service.DeletionService
}

func NewRoomHandler(roomSvc service.RoomService, deletionSvc service.DeletionService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc, deletionSvc: deletionSvc}
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}

	var room domain.Room
	if err := decodeBody(r, &room); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.roomSvc.Create(r.Context(), actor, &room); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid room id"})
		return
	}

	var room domain.Room
	if err := decodeBody(r, &room); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	room.ID = id

	if err := h.roomSvc.Update(r.Context(), actor, &room); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid room id"})
		return
	}

	room, err := h.roomSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}

	rooms, err := h.roomSvc.ListAvailable(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid room id"})
		return
	}

	available, err := h.roomSvc.IsAvailable(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_available": available})
}

// SetAvailability is the manual override for the availability flag. The
// nightly reconciliation job will revert it if it disagrees with assignment
// state.
func (h *RoomHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}
	if !actor.Is(domain.RoleAdmin, domain.RoleLandlord) {
		writeError(w, domain.ErrPermissionDenied)
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid room id"})
		return
	}

	var body struct {
		IsAvailable bool `json:"is_available"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.roomSvc.SetAvailability(r.Context(), id, body.IsAvailable); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_available": body.IsAvailable})
}

func (h *RoomHandler) CanDelete(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid room id"})
		return
	}

	canDelete, err := h.deletionSvc.CanDeleteRoom(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	hasHistory, err := h.deletionSvc.RoomHasHistory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{
		"can_delete":  canDelete,
		"has_history": hasHistory,
	})
}

func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing actor"})
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid room id"})
		return
	}

	if err := h.deletionSvc.DeleteRoom(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
