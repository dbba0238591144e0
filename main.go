package main

import (
	"log"
	"net/http"
	"os"

	controller "github.com/nikunjj1175/Cafe_Order_Management_Backend/controllers"
	middleware "github.com/nikunjj1175/Cafe_Order_Management_Backend/middlewares"
	routes "github.com/nikunjj1175/Cafe_Order_Management_Backend/routes"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/ws"
	"github.com/joho/godotenv"

	"github.com/gorilla/mux"
)

// LoadEnv loads environment variables from the .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	// Load environment variables
	LoadEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// Realtime order notifications
	hub := ws.NewHub()
	go hub.Run()
	controller.SetNotifier(hub)

	router := mux.NewRouter()

	// Public Routes (No Authentication)
	routes.PublicAuthRoutes(router)
	routes.PublicTableRoutes(router)

	// Apply Authentication Middleware to Protected Routes
	securedRoutes := router.PathPrefix("/").Subrouter()
	securedRoutes.Use(middleware.Authentication)
	routes.UserProtectedRoutes(securedRoutes)
	routes.PlanProtectedRoutes(securedRoutes)
	routes.CafeProtectedRoutes(securedRoutes)
	routes.TableProtectedRoutes(securedRoutes)
	routes.MenuItemProtectedRoutes(securedRoutes)
	routes.OrderProtectedRoutes(securedRoutes)
	securedRoutes.HandleFunc("/ws/orders", hub.HandleOrderSocket).Methods(http.MethodGet)

	log.Printf("Server running on port %s", port)
	http.ListenAndServe(":"+port, router)
}
