package routes

import (
	"net/http"

	controller "github.com/nikunjj1175/Cafe_Order_Management_Backend/controllers"

	"github.com/gorilla/mux"
)

// PublicTableRoutes are the customer-facing endpoints behind the QR code.
// The table slug in the path is the only credential.
func PublicTableRoutes(router *mux.Router) {
	router.HandleFunc("/public/{slug}/menu", controller.GetPublicMenu).Methods(http.MethodGet)
	router.HandleFunc("/public/{slug}/orders", controller.CreatePublicOrder).Methods(http.MethodPost)
	router.HandleFunc("/public/{slug}/orders/{order_id}", controller.GetPublicOrder).Methods(http.MethodGet)
	router.HandleFunc("/public/{slug}/orders/{order_id}/cancel", controller.CancelPublicOrder).Methods(http.MethodPost)
}
