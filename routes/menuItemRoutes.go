package routes

import (
	"net/http"

	controller "github.com/nikunjj1175/Cafe_Order_Management_Backend/controllers"
	middleware "github.com/nikunjj1175/Cafe_Order_Management_Backend/middlewares"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"

	"github.com/gorilla/mux"
)

func MenuItemProtectedRoutes(router *mux.Router) {
	managerOrAbove := middleware.Authorize(models.RoleSuperAdmin, models.RoleAdmin, models.RoleManager)

	router.HandleFunc("/menu-items", managerOrAbove(controller.GetMenuItems)).Methods(http.MethodGet)
	router.HandleFunc("/menu-items", managerOrAbove(controller.CreateMenuItem)).Methods(http.MethodPost)

	router.HandleFunc("/menu-items/{item_id}", managerOrAbove(controller.GetMenuItem)).Methods(http.MethodGet)
	router.HandleFunc("/menu-items/{item_id}", managerOrAbove(controller.UpdateMenuItem)).Methods(http.MethodPatch)
	router.HandleFunc("/menu-items/{item_id}", managerOrAbove(controller.DeleteMenuItem)).Methods(http.MethodDelete)

	router.HandleFunc("/menu-items/{item_id}/availability", managerOrAbove(controller.SetMenuItemAvailability)).Methods(http.MethodPatch)
}
