package routes

import (
	controller "github.com/nikunjj1175/Cafe_Order_Management_Backend/controllers"
	middleware "github.com/nikunjj1175/Cafe_Order_Management_Backend/middlewares"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"

	"github.com/gorilla/mux"
)

func PublicAuthRoutes(router *mux.Router) {
	router.HandleFunc("/users/signup", controller.SignUp).Methods("POST")
	router.HandleFunc("/users/login", controller.Login).Methods("POST")
}

func UserProtectedRoutes(router *mux.Router) {
	adminOnly := middleware.Authorize(models.RoleSuperAdmin, models.RoleAdmin)

	router.HandleFunc("/users", adminOnly(controller.GetUsers)).Methods("GET")
	router.HandleFunc("/users", adminOnly(controller.CreateStaff)).Methods("POST")
	router.HandleFunc("/users/logout", controller.Logout).Methods("POST")
	router.HandleFunc("/users/{user_id}", adminOnly(controller.GetUser)).Methods("GET")
}
