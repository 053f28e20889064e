package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"dormhub-backend/internal/security"
	"dormhub-backend/internal/service"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	TokenManager  security.TokenManager
	AssignmentSvc service.AssignmentService
	PaymentSvc    service.PaymentService
	RoomSvc       service.RoomService
	BuildingSvc   service.BuildingService
	UserSvc       service.UserService
	DeletionSvc   service.DeletionService
}

// NewRouter wires every API route under /api/v1 with authentication and
// request logging applied to the whole subtree.
func NewRouter(deps RouterDeps) *mux.Router {
	assignmentHandler := NewAssignmentHandler(deps.AssignmentSvc)
	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	roomHandler := NewRoomHandler(deps.RoomSvc, deps.DeletionSvc)
	buildingHandler := NewBuildingHandler(deps.BuildingSvc, deps.DeletionSvc)
	userHandler := NewUserHandler(deps.UserSvc, deps.DeletionSvc)

	auth := NewAuthMiddleware(deps.TokenManager)

	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(RequestLogging)
	api.Use(auth.Authenticate)

	// Assignments
	api.HandleFunc("/assignments", assignmentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/assignments", assignmentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/assignments/{id}", assignmentHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/assignments/{id}", assignmentHandler.Edit).Methods(http.MethodPut)

	// Payments
	api.HandleFunc("/payments", paymentHandler.Record).Methods(http.MethodPost)
	api.HandleFunc("/payments", paymentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/payments/stats", paymentHandler.Stats).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}", paymentHandler.Edit).Methods(http.MethodPut)
	api.HandleFunc("/payments/{id}", paymentHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/students/{id}/balance", paymentHandler.Balance).Methods(http.MethodGet)

	// Rooms
	api.HandleFunc("/rooms", roomHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rooms/available", roomHandler.ListAvailable).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", roomHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}/availability", roomHandler.GetAvailability).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}/availability", roomHandler.SetAvailability).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{id}/can-delete", roomHandler.CanDelete).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", roomHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{id}", roomHandler.Delete).Methods(http.MethodDelete)

	// Buildings
	api.HandleFunc("/buildings", buildingHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/buildings", buildingHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/buildings/{id}", buildingHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/buildings/{id}", buildingHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/buildings/{id}/can-delete", buildingHandler.CanDelete).Methods(http.MethodGet)
	api.HandleFunc("/buildings/{id}/deactivate", buildingHandler.Deactivate).Methods(http.MethodPost)
	api.HandleFunc("/buildings/{id}", buildingHandler.Delete).Methods(http.MethodDelete)

	// Users
	api.HandleFunc("/users", userHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/users", userHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", userHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", userHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", userHandler.Delete).Methods(http.MethodDelete)

	return r
}
