package routes

import (
	"net/http"

	controller "github.com/nikunjj1175/Cafe_Order_Management_Backend/controllers"
	middleware "github.com/nikunjj1175/Cafe_Order_Management_Backend/middlewares"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"

	"github.com/gorilla/mux"
)

func TableProtectedRoutes(router *mux.Router) {
	managerOrAbove := middleware.Authorize(models.RoleSuperAdmin, models.RoleAdmin, models.RoleManager)

	router.HandleFunc("/tables", managerOrAbove(controller.GetTables)).Methods(http.MethodGet)
	router.HandleFunc("/tables", managerOrAbove(controller.CreateTable)).Methods(http.MethodPost)

	router.HandleFunc("/tables/{table_id}", managerOrAbove(controller.GetTable)).Methods(http.MethodGet)
	router.HandleFunc("/tables/{table_id}", managerOrAbove(controller.UpdateTable)).Methods(http.MethodPatch)
	router.HandleFunc("/tables/{table_id}", managerOrAbove(controller.DeleteTable)).Methods(http.MethodDelete)

	router.HandleFunc("/tables/{table_id}/slug", managerOrAbove(controller.RegenerateTableSlug)).Methods(http.MethodPut)
}
