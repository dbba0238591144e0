package routes

import (
	"net/http"

	controller "github.com/nikunjj1175/Cafe_Order_Management_Backend/controllers"
	middleware "github.com/nikunjj1175/Cafe_Order_Management_Backend/middlewares"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"

	"github.com/gorilla/mux"
)

func PlanProtectedRoutes(router *mux.Router) {
	superAdminOnly := middleware.Authorize(models.RoleSuperAdmin)

	router.HandleFunc("/plans", superAdminOnly(controller.GetPlans)).Methods(http.MethodGet)
	router.HandleFunc("/plans", superAdminOnly(controller.CreatePlan)).Methods(http.MethodPost)

	router.HandleFunc("/plans/{plan_id}", superAdminOnly(controller.GetPlan)).Methods(http.MethodGet)
	router.HandleFunc("/plans/{plan_id}", superAdminOnly(controller.UpdatePlan)).Methods(http.MethodPatch)
	router.HandleFunc("/plans/{plan_id}", superAdminOnly(controller.DeactivatePlan)).Methods(http.MethodDelete)
}
