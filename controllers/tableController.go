package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "github.com/nikunjj1175/Cafe_Order_Management_Backend/config"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/helper"
	middleware "github.com/nikunjj1175/Cafe_Order_Management_Backend/middlewares"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

var tableCollection *mongo.Collection = database.OpenCollection(database.Client, "table")

func GetTables(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	callerRole, callerCafe := middleware.GetRoleFromContext(r)

	filter := bson.M{}
	if callerRole != models.RoleSuperAdmin {
		filter["cafe_id"] = callerCafe
	} else if cafeId := r.URL.Query().Get("cafe_id"); cafeId != "" {
		filter["cafe_id"] = cafeId
	}

	result, err := tableCollection.Find(ctx, filter)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error occurred while listing tables"}`, http.StatusInternalServerError)
		return
	}

	var allTables []models.Table
	if err = result.All(ctx, &allTables); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding table data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Tables retrieved successfully",
		"data":    allTables,
	})
}

func GetTable(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	tableId := mux.Vars(r)["table_id"]

	var table models.Table
	if err := tableCollection.FindOne(ctx, bson.M{"table_id": tableId}).Decode(&table); err != nil {
		http.Error(w, `{"success": false, "message": "Table not found"}`, http.StatusNotFound)
		return
	}

	if !cafeScopeOK(r, table.Cafe_id) {
		http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Table retrieved successfully",
		"data":    table,
	})
}

// CreateTable adds a table to the caller's cafe and mints its QR slug.
// Creation is capped by the cafe's plan.
func CreateTable(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	callerRole, callerCafe := middleware.GetRoleFromContext(r)

	var table models.Table
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if callerRole != models.RoleSuperAdmin {
		table.Cafe_id = callerCafe
	}

	if validationErr := validate.Struct(table); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Invalid table data"}`, http.StatusBadRequest)
		return
	}

	var cafe models.Cafe
	if err := cafeCollection.FindOne(ctx, bson.M{"cafe_id": table.Cafe_id}).Decode(&cafe); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid cafe ID, cafe not found"}`, http.StatusNotFound)
		return
	}

	plan, err := findActivePlan(ctx, &cafe)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Cafe has no usable plan"}`, http.StatusBadRequest)
		return
	}

	tableCount, err := tableCollection.CountDocuments(ctx, bson.M{"cafe_id": table.Cafe_id})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking table count"}`, http.StatusInternalServerError)
		return
	}
	if tableCount >= int64(*plan.Max_tables) {
		http.Error(w, `{"success": false, "message": "Plan limit reached for tables"}`, http.StatusForbidden)
		return
	}

	duplicate, err := tableCollection.CountDocuments(ctx, bson.M{"cafe_id": table.Cafe_id, "table_number": table.Table_number})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking table number"}`, http.StatusInternalServerError)
		return
	}
	if duplicate > 0 {
		http.Error(w, `{"success": false, "message": "Table number already exists in this cafe"}`, http.StatusConflict)
		return
	}

	slug, err := helper.NewTableSlug()
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error generating table slug"}`, http.StatusInternalServerError)
		return
	}

	table.Created_at = time.Now()
	table.Updated_at = time.Now()
	table.ID = primitive.NewObjectID()
	table.Table_id = table.ID.Hex()
	table.Slug = slug

	if _, err := tableCollection.InsertOne(ctx, table); err != nil {
		http.Error(w, `{"success": false, "message": "Table creation failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Table created successfully",
		"data":    table,
	})
}

func UpdateTable(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	tableId := mux.Vars(r)["table_id"]

	var existing models.Table
	if err := tableCollection.FindOne(ctx, bson.M{"table_id": tableId}).Decode(&existing); err != nil {
		http.Error(w, `{"success": false, "message": "Table not found"}`, http.StatusNotFound)
		return
	}

	if !cafeScopeOK(r, existing.Cafe_id) {
		http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
		return
	}

	var table models.Table
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	updateObj := bson.D{}

	if table.Table_number != nil {
		duplicate, err := tableCollection.CountDocuments(ctx, bson.M{
			"cafe_id":      existing.Cafe_id,
			"table_number": table.Table_number,
			"table_id":     bson.M{"$ne": tableId},
		})
		if err != nil {
			http.Error(w, `{"success": false, "message": "Error checking table number"}`, http.StatusInternalServerError)
			return
		}
		if duplicate > 0 {
			http.Error(w, `{"success": false, "message": "Table number already exists in this cafe"}`, http.StatusConflict)
			return
		}
		updateObj = append(updateObj, bson.E{Key: "table_number", Value: table.Table_number})
	}
	if table.Seats != nil {
		updateObj = append(updateObj, bson.E{Key: "seats", Value: table.Seats})
	}

	if len(updateObj) == 0 {
		http.Error(w, `{"success": false, "message": "No fields to update"}`, http.StatusBadRequest)
		return
	}

	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	opt := options.Update().SetUpsert(false)
	result, err := tableCollection.UpdateOne(ctx, bson.M{"table_id": tableId}, bson.D{{Key: "$set", Value: updateObj}}, opt)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Table update failed"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Table not found"}`, http.StatusNotFound)
		return
	}

	var updatedTable models.Table
	if err := tableCollection.FindOne(ctx, bson.M{"table_id": tableId}).Decode(&updatedTable); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated table"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Table updated successfully",
		"data":    updatedTable,
	})
}

func DeleteTable(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	tableId := mux.Vars(r)["table_id"]

	var table models.Table
	if err := tableCollection.FindOne(ctx, bson.M{"table_id": tableId}).Decode(&table); err != nil {
		http.Error(w, `{"success": false, "message": "Table not found"}`, http.StatusNotFound)
		return
	}

	if !cafeScopeOK(r, table.Cafe_id) {
		http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
		return
	}

	result, err := tableCollection.DeleteOne(ctx, bson.M{"table_id": tableId})
	if err != nil || result.DeletedCount == 0 {
		http.Error(w, `{"success": false, "message": "Error deleting table"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Table deleted successfully",
		"data":    table,
	})
}

// RegenerateTableSlug rotates the QR token, invalidating printed codes.
func RegenerateTableSlug(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	tableId := mux.Vars(r)["table_id"]

	var table models.Table
	if err := tableCollection.FindOne(ctx, bson.M{"table_id": tableId}).Decode(&table); err != nil {
		http.Error(w, `{"success": false, "message": "Table not found"}`, http.StatusNotFound)
		return
	}

	if !cafeScopeOK(r, table.Cafe_id) {
		http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
		return
	}

	slug, err := helper.NewTableSlug()
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error generating table slug"}`, http.StatusInternalServerError)
		return
	}

	update := bson.M{"$set": bson.M{"slug": slug, "updated_at": time.Now()}}
	if _, err := tableCollection.UpdateOne(ctx, bson.M{"table_id": tableId}, update); err != nil {
		http.Error(w, `{"success": false, "message": "Slug regeneration failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Table slug regenerated successfully",
		"data": map[string]interface{}{
			"table_id": tableId,
			"slug":     slug,
		},
	})
}
