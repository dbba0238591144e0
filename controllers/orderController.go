package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	database "github.com/nikunjj1175/Cafe_Order_Management_Backend/config"
	middleware "github.com/nikunjj1175/Cafe_Order_Management_Backend/middlewares"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/orders"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

// Get all orders of the caller's cafe, optionally filtered by status
func GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	callerRole, callerCafe := middleware.GetRoleFromContext(r)

	recordPerPage, err := strconv.Atoi(r.URL.Query().Get("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	startIndex := (page - 1) * recordPerPage

	filter := bson.D{}
	if callerRole != models.RoleSuperAdmin {
		filter = append(filter, bson.E{Key: "cafe_id", Value: callerCafe})
	} else if cafeId := r.URL.Query().Get("cafe_id"); cafeId != "" {
		filter = append(filter, bson.E{Key: "cafe_id", Value: cafeId})
	}

	if status := r.URL.Query().Get("status"); status != "" {
		if !orders.ValidStatus(models.Status(status)) {
			http.Error(w, `{"success": false, "message": "Invalid order status"}`, http.StatusBadRequest)
			return
		}
		filter = append(filter, bson.E{Key: "status", Value: status})
	}

	matchStage := bson.D{{Key: "$match", Value: filter}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}

	cursor, err := orderCollection.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage, skipStage, limitStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving orders"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var allOrders []models.Order
	if err = cursor.All(ctx, &allOrders); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding order data"}`, http.StatusInternalServerError)
		return
	}

	countFilter := bson.M{}
	for _, e := range filter {
		countFilter[e.Key] = e.Value
	}
	totalOrders, err := orderCollection.CountDocuments(ctx, countFilter)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving total order count"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    allOrders,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_orders":     totalOrders,
			"total_pages":      (totalOrders + int64(recordPerPage) - 1) / int64(recordPerPage),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func GetOrderById(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]
	if orderId == "" {
		http.Error(w, `{"success": false, "message": "Invalid order ID"}`, http.StatusBadRequest)
		return
	}

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	if !cafeScopeOK(r, order.Cafe_id) {
		http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

// UpdateOrderStatus moves an order through its lifecycle. The transition
// table gates the change; admins and the super admin may force any
// target status.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	var requestBody struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	target := models.Status(requestBody.Status)
	if !orders.ValidStatus(target) {
		http.Error(w, `{"success": false, "message": "Invalid order status"}`, http.StatusBadRequest)
		return
	}

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	if !cafeScopeOK(r, order.Cafe_id) {
		http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
		return
	}

	callerRole, _ := middleware.GetRoleFromContext(r)
	_, _, _, uid := middleware.GetUserFromContext(r)

	if err := orders.Transition(&order, target, callerRole, uid); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid transition"}`, http.StatusConflict)
		return
	}

	updateObj := bson.D{
		{Key: "status", Value: order.Status},
		{Key: "updated_at", Value: time.Now()},
	}
	switch target {
	case models.StatusAccepted:
		updateObj = append(updateObj, bson.E{Key: "accepted_by", Value: order.Accepted_by})
	case models.StatusCompleted:
		updateObj = append(updateObj, bson.E{Key: "completed_by", Value: order.Completed_by})
	case models.StatusDelivered:
		updateObj = append(updateObj, bson.E{Key: "delivered_by", Value: order.Delivered_by})
	}

	result, err := orderCollection.UpdateOne(ctx, bson.M{"order_id": orderId}, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update order status"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	}

	notifyOrderUpdated(&order)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order status updated successfully",
		"data":    order,
	})
}
