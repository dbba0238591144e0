package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "github.com/nikunjj1175/Cafe_Order_Management_Backend/config"
	middleware "github.com/nikunjj1175/Cafe_Order_Management_Backend/middlewares"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

var menuItemCollection *mongo.Collection = database.OpenCollection(database.Client, "menu_item")

// Get all menu items of the caller's cafe with pagination
func GetMenuItems(w http.ResponseWriter, r *http.Request) {
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
		filter = bson.D{{Key: "cafe_id", Value: callerCafe}}
	} else if cafeId := r.URL.Query().Get("cafe_id"); cafeId != "" {
		filter = bson.D{{Key: "cafe_id", Value: cafeId}}
	}

	totalItems, err := menuItemCollection.CountDocuments(ctx, filter)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving total menu item count"}`, http.StatusInternalServerError)
		return
	}

	matchStage := bson.D{{Key: "$match", Value: filter}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}
	projectStage := bson.D{
		{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "item_id", Value: 1},
			{Key: "cafe_id", Value: 1},
			{Key: "name", Value: 1},
			{Key: "category", Value: 1},
			{Key: "price", Value: 1},
			{Key: "description", Value: 1},
			{Key: "image", Value: 1},
			{Key: "available", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "updated_at", Value: 1},
		}},
	}

	result, err := menuItemCollection.Aggregate(ctx, mongo.Pipeline{matchStage, skipStage, limitStage, projectStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving menu items"}`, http.StatusInternalServerError)
		return
	}

	var allItems []bson.M
	if err = result.All(ctx, &allItems); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding menu item data"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Menu items retrieved successfully",
		"data":    allItems,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_items":      totalItems,
			"total_pages":      (totalItems + int64(recordPerPage) - 1) / int64(recordPerPage),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Get a single menu item
func GetMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	var item models.MenuItem
	if err := menuItemCollection.FindOne(ctx, bson.M{"item_id": itemId}).Decode(&item); err != nil {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	if !cafeScopeOK(r, item.Cafe_id) {
		http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item retrieved successfully",
		"data":    item,
	})
}

// CreateMenuItem adds an item to the caller's cafe menu, capped by the
// cafe's plan.
func CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	callerRole, callerCafe := middleware.GetRoleFromContext(r)

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if callerRole != models.RoleSuperAdmin {
		item.Cafe_id = callerCafe
	}

	if validationErr := validate.Struct(item); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Invalid menu item data"}`, http.StatusBadRequest)
		return
	}

	var cafe models.Cafe
	if err := cafeCollection.FindOne(ctx, bson.M{"cafe_id": item.Cafe_id}).Decode(&cafe); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid cafe ID, cafe not found"}`, http.StatusNotFound)
		return
	}

	plan, err := findActivePlan(ctx, &cafe)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Cafe has no usable plan"}`, http.StatusBadRequest)
		return
	}

	itemCount, err := menuItemCollection.CountDocuments(ctx, bson.M{"cafe_id": item.Cafe_id})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking menu size"}`, http.StatusInternalServerError)
		return
	}
	if itemCount >= int64(*plan.Max_menu_items) {
		http.Error(w, `{"success": false, "message": "Plan limit reached for menu items"}`, http.StatusForbidden)
		return
	}

	item.Created_at = time.Now()
	item.Updated_at = time.Now()
	item.ID = primitive.NewObjectID()
	item.Item_id = item.ID.Hex()
	item.Available = true

	if _, err := menuItemCollection.InsertOne(ctx, item); err != nil {
		http.Error(w, `{"success": false, "message": "Menu item creation failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item created successfully",
		"data":    item,
	})
}

func UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	var existing models.MenuItem
	if err := menuItemCollection.FindOne(ctx, bson.M{"item_id": itemId}).Decode(&existing); err != nil {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	if !cafeScopeOK(r, existing.Cafe_id) {
		http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
		return
	}

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	updateObj := bson.D{}

	if item.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: item.Name})
	}
	if item.Category != nil {
		updateObj = append(updateObj, bson.E{Key: "category", Value: item.Category})
	}
	if item.Price != nil {
		if *item.Price <= 0 {
			http.Error(w, `{"success": false, "message": "Price must be positive"}`, http.StatusBadRequest)
			return
		}
		updateObj = append(updateObj, bson.E{Key: "price", Value: item.Price})
	}
	if item.Description != nil {
		updateObj = append(updateObj, bson.E{Key: "description", Value: item.Description})
	}
	if item.Image != nil {
		updateObj = append(updateObj, bson.E{Key: "image", Value: item.Image})
	}

	if len(updateObj) == 0 {
		http.Error(w, `{"success": false, "message": "No fields to update"}`, http.StatusBadRequest)
		return
	}

	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	opt := options.Update().SetUpsert(false)
	result, err := menuItemCollection.UpdateOne(ctx, bson.M{"item_id": itemId}, bson.D{{Key: "$set", Value: updateObj}}, opt)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Menu item update failed"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	var updatedItem models.MenuItem
	if err := menuItemCollection.FindOne(ctx, bson.M{"item_id": itemId}).Decode(&updatedItem); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated menu item"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item updated successfully",
		"data":    updatedItem,
	})
}

// SetMenuItemAvailability flips the sold-out flag without touching the
// rest of the item.
func SetMenuItemAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	var existing models.MenuItem
	if err := menuItemCollection.FindOne(ctx, bson.M{"item_id": itemId}).Decode(&existing); err != nil {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	if !cafeScopeOK(r, existing.Cafe_id) {
		http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
		return
	}

	var requestBody struct {
		Available *bool `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil || requestBody.Available == nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{"available": *requestBody.Available, "updated_at": time.Now()}}
	if _, err := menuItemCollection.UpdateOne(ctx, bson.M{"item_id": itemId}, update); err != nil {
		http.Error(w, `{"success": false, "message": "Availability update failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item availability updated successfully",
	})
}

func DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	var item models.MenuItem
	if err := menuItemCollection.FindOne(ctx, bson.M{"item_id": itemId}).Decode(&item); err != nil {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	if !cafeScopeOK(r, item.Cafe_id) {
		http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
		return
	}

	result, err := menuItemCollection.DeleteOne(ctx, bson.M{"item_id": itemId})
	if err != nil || result.DeletedCount == 0 {
		http.Error(w, `{"success": false, "message": "Error deleting menu item"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item deleted successfully",
		"data":    item,
	})
}
