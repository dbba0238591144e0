package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/orders"
)

// RecordOrderPayment posts a payment against an order. Once the running
// total covers the order it flips to PAID, whatever its current status.
func RecordOrderPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	var requestBody struct {
		Method    string  `json:"method"`
		Amount    float64 `json:"amount"`
		Reference string  `json:"reference"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
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

	err = orders.RecordPayment(&order, models.PaymentMethod(requestBody.Method), requestBody.Amount, requestBody.Reference)
	if err != nil {
		http.Error(w, `{"success": false, "message": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{
		"payments":    order.Payments,
		"paid_amount": order.Paid_amount,
		"status":      order.Status,
		"updated_at":  time.Now(),
	}}
	if _, err := orderCollection.UpdateOne(ctx, bson.M{"order_id": orderId}, update); err != nil {
		http.Error(w, `{"success": false, "message": "Payment recording failed"}`, http.StatusInternalServerError)
		return
	}

	notifyPaymentRecorded(&order)
	if order.Status == models.StatusPaid {
		notifyOrderUpdated(&order)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Payment recorded successfully",
		"data":    order,
	})
}

// GetOrderPayments lists the payments recorded against one order.
func GetOrderPayments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

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
		"message": "Payments retrieved successfully",
		"data": map[string]interface{}{
			"order_id":    order.Order_id,
			"total":       order.Total,
			"paid_amount": order.Paid_amount,
			"status":      order.Status,
			"payments":    order.Payments,
		},
	})
}
