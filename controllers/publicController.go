package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/orders"
)

// findTableBySlug resolves the QR token the customer scanned.
func findTableBySlug(ctx context.Context, slug string) (*models.Table, error) {
	var table models.Table
	if err := tableCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&table); err != nil {
		return nil, err
	}
	return &table, nil
}

// GetPublicMenu serves the available menu of the cafe owning the scanned
// table. No authentication; the slug is the capability.
func GetPublicMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	slug := mux.Vars(r)["slug"]

	table, err := findTableBySlug(ctx, slug)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Table not found"}`, http.StatusNotFound)
		return
	}

	if _, err := requireOpenCafe(ctx, table.Cafe_id); err != nil {
		http.Error(w, `{"success": false, "message": "Cafe is not taking orders"}`, http.StatusForbidden)
		return
	}

	cursor, err := menuItemCollection.Find(ctx, bson.M{"cafe_id": table.Cafe_id, "available": true})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving menu"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err = cursor.All(ctx, &items); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding menu data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu retrieved successfully",
		"data": map[string]interface{}{
			"table_number": table.Table_number,
			"items":        items,
		},
	})
}

// CreatePublicOrder submits the customer's cart against the scanned
// table. Item names and prices are snapshotted so later menu edits never
// change this order.
func CreatePublicOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	slug := mux.Vars(r)["slug"]

	table, err := findTableBySlug(ctx, slug)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Table not found"}`, http.StatusNotFound)
		return
	}

	if _, err := requireOpenCafe(ctx, table.Cafe_id); err != nil {
		http.Error(w, `{"success": false, "message": "Cafe is not taking orders"}`, http.StatusForbidden)
		return
	}

	var requestBody struct {
		Items []struct {
			Item_id  string  `json:"item_id"`
			Quantity int     `json:"quantity"`
			Note     *string `json:"note"`
		} `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil || len(requestBody.Items) == 0 {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	var lines []models.OrderLine
	for _, cartLine := range requestBody.Items {
		if cartLine.Quantity <= 0 {
			http.Error(w, `{"success": false, "message": "Quantity must be positive"}`, http.StatusBadRequest)
			return
		}

		var item models.MenuItem
		err := menuItemCollection.FindOne(ctx, bson.M{"item_id": cartLine.Item_id, "cafe_id": table.Cafe_id}).Decode(&item)
		if err != nil {
			http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
			return
		}
		if !item.Available {
			http.Error(w, `{"success": false, "message": "Menu item is not available"}`, http.StatusBadRequest)
			return
		}

		lines = append(lines, models.OrderLine{
			Item_id:  item.Item_id,
			Name:     *item.Name,
			Price:    *item.Price,
			Quantity: cartLine.Quantity,
			Note:     cartLine.Note,
		})
	}

	subtotal, tax, total := orders.ComputeTotals(lines)

	order := models.Order{
		Cafe_id:    table.Cafe_id,
		Table_id:   table.Table_id,
		Status:     models.StatusNew,
		Items:      lines,
		Subtotal:   subtotal,
		Tax:        tax,
		Total:      total,
		Payments:   []models.Payment{},
		Created_at: time.Now(),
		Updated_at: time.Now(),
	}
	order.ID = primitive.NewObjectID()
	order.Order_id = order.ID.Hex()

	if _, err := orderCollection.InsertOne(ctx, order); err != nil {
		http.Error(w, `{"success": false, "message": "Order creation failed"}`, http.StatusInternalServerError)
		return
	}

	notifyOrderCreated(&order)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order created successfully",
		"data":    order,
	})
}

// findTableOrder loads an order and checks it belongs to the slug's table.
func findTableOrder(ctx context.Context, slug, orderId string) (*models.Order, int, string) {
	table, err := findTableBySlug(ctx, slug)
	if err != nil {
		return nil, http.StatusNotFound, "Table not found"
	}

	var order models.Order
	err = orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, http.StatusNotFound, "Order not found"
	} else if err != nil {
		return nil, http.StatusInternalServerError, "Error retrieving order"
	}

	if order.Table_id != table.Table_id {
		return nil, http.StatusNotFound, "Order not found"
	}
	return &order, 0, ""
}

// GetPublicOrder lets the table holder track their order.
func GetPublicOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	params := mux.Vars(r)

	order, errCode, errMsg := findTableOrder(ctx, params["slug"], params["order_id"])
	if order == nil {
		http.Error(w, `{"success": false, "message": "`+errMsg+`"}`, errCode)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

// CancelPublicOrder is the narrow cancellation capability of the table
// holder: only while the order is NEW or ACCEPTED, no role override.
func CancelPublicOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	params := mux.Vars(r)

	order, errCode, errMsg := findTableOrder(ctx, params["slug"], params["order_id"])
	if order == nil {
		http.Error(w, `{"success": false, "message": "`+errMsg+`"}`, errCode)
		return
	}

	if err := orders.CancelByTable(order); err != nil {
		http.Error(w, `{"success": false, "message": "Cannot cancel at this stage"}`, http.StatusConflict)
		return
	}

	update := bson.M{"$set": bson.M{"status": order.Status, "updated_at": time.Now()}}
	if _, err := orderCollection.UpdateOne(ctx, bson.M{"order_id": order.Order_id}, update); err != nil {
		http.Error(w, `{"success": false, "message": "Order cancellation failed"}`, http.StatusInternalServerError)
		return
	}

	notifyOrderUpdated(order)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order cancelled successfully",
		"data":    order,
	})
}
