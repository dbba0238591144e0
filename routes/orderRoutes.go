package routes

import (
	"net/http"

	controller "github.com/nikunjj1175/Cafe_Order_Management_Backend/controllers"
	middleware "github.com/nikunjj1175/Cafe_Order_Management_Backend/middlewares"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"

	"github.com/gorilla/mux"
)

func OrderProtectedRoutes(router *mux.Router) {
	allStaff := middleware.Authorize(models.RoleSuperAdmin, models.RoleAdmin, models.RoleManager, models.RoleKitchen, models.RoleWaiter)
	paymentTakers := middleware.Authorize(models.RoleSuperAdmin, models.RoleAdmin, models.RoleManager, models.RoleWaiter)

	router.HandleFunc("/orders", allStaff(controller.GetOrders)).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}", allStaff(controller.GetOrderById)).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}/status", allStaff(controller.UpdateOrderStatus)).Methods(http.MethodPatch)

	router.HandleFunc("/orders/{order_id}/payments", paymentTakers(controller.RecordOrderPayment)).Methods(http.MethodPost)
	router.HandleFunc("/orders/{order_id}/payments", allStaff(controller.GetOrderPayments)).Methods(http.MethodGet)
}
