package routes

import (
	"net/http"

	controller "github.com/nikunjj1175/Cafe_Order_Management_Backend/controllers"
	middleware "github.com/nikunjj1175/Cafe_Order_Management_Backend/middlewares"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"

	"github.com/gorilla/mux"
)

func CafeProtectedRoutes(router *mux.Router) {
	superAdminOnly := middleware.Authorize(models.RoleSuperAdmin)
	adminOrAbove := middleware.Authorize(models.RoleSuperAdmin, models.RoleAdmin)

	router.HandleFunc("/cafes", superAdminOnly(controller.GetCafes)).Methods(http.MethodGet)
	router.HandleFunc("/cafes", superAdminOnly(controller.CreateCafe)).Methods(http.MethodPost)

	router.HandleFunc("/cafes/{cafe_id}", adminOrAbove(controller.GetCafe)).Methods(http.MethodGet)
	router.HandleFunc("/cafes/{cafe_id}", adminOrAbove(controller.UpdateCafe)).Methods(http.MethodPatch)
	router.HandleFunc("/cafes/{cafe_id}", superAdminOnly(controller.DeactivateCafe)).Methods(http.MethodDelete)
}
