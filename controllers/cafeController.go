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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "github.com/nikunjj1175/Cafe_Order_Management_Backend/config"
	middleware "github.com/nikunjj1175/Cafe_Order_Management_Backend/middlewares"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

var cafeCollection *mongo.Collection = database.OpenCollection(database.Client, "cafe")

// cafeScopeOK checks that the caller may touch documents of the given
// cafe. Super admins see everything.
func cafeScopeOK(r *http.Request, cafeID string) bool {
	role, callerCafe := middleware.GetRoleFromContext(r)
	return role == models.RoleSuperAdmin || callerCafe == cafeID
}

func GetCafes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	recordPerPage, err := strconv.Atoi(r.URL.Query().Get("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	startIndex := (page - 1) * recordPerPage

	totalCafes, err := cafeCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving total cafe count"}`, http.StatusInternalServerError)
		return
	}

	matchStage := bson.D{{Key: "$match", Value: bson.D{}}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}
	projectStage := bson.D{
		{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "cafe_id", Value: 1},
			{Key: "name", Value: 1},
			{Key: "address", Value: 1},
			{Key: "phone", Value: 1},
			{Key: "plan_id", Value: 1},
			{Key: "subscription_expires_at", Value: 1},
			{Key: "active", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "updated_at", Value: 1},
		}},
	}

	cursor, err := cafeCollection.Aggregate(ctx, mongo.Pipeline{matchStage, skipStage, limitStage, projectStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving cafes"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var allCafes []bson.M
	if err = cursor.All(ctx, &allCafes); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding cafe data"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Cafes retrieved successfully",
		"data":    allCafes,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_cafes":      totalCafes,
			"total_pages":      (totalCafes + int64(recordPerPage) - 1) / int64(recordPerPage),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func GetCafe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cafeId := mux.Vars(r)["cafe_id"]

	if !cafeScopeOK(r, cafeId) {
		http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
		return
	}

	var cafe models.Cafe
	if err := cafeCollection.FindOne(ctx, bson.M{"cafe_id": cafeId}).Decode(&cafe); err != nil {
		http.Error(w, `{"success": false, "message": "Cafe not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Cafe retrieved successfully",
		"data":    cafe,
	})
}

// CreateCafe provisions a cafe on a subscription plan (super admin only).
func CreateCafe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var cafe models.Cafe
	if err := json.NewDecoder(r.Body).Decode(&cafe); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(cafe); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Invalid cafe data"}`, http.StatusBadRequest)
		return
	}

	var plan models.Plan
	if err := planCollection.FindOne(ctx, bson.M{"plan_id": cafe.Plan_id}).Decode(&plan); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid plan ID, plan not found"}`, http.StatusNotFound)
		return
	}
	if !plan.Active {
		http.Error(w, `{"success": false, "message": "Plan is no longer offered"}`, http.StatusBadRequest)
		return
	}

	cafe.Created_at = time.Now()
	cafe.Updated_at = time.Now()
	cafe.ID = primitive.NewObjectID()
	cafe.Cafe_id = cafe.ID.Hex()
	cafe.Active = true
	cafe.Subscription_expires_at = time.Now().AddDate(0, 0, *plan.Duration_days)

	if _, err := cafeCollection.InsertOne(ctx, cafe); err != nil {
		http.Error(w, `{"success": false, "message": "Cafe creation failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Cafe created successfully",
		"data":    cafe,
	})
}

func UpdateCafe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cafeId := mux.Vars(r)["cafe_id"]

	if !cafeScopeOK(r, cafeId) {
		http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
		return
	}

	var cafe models.Cafe
	if err := json.NewDecoder(r.Body).Decode(&cafe); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	callerRole, _ := middleware.GetRoleFromContext(r)

	updateObj := bson.D{}

	if cafe.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: cafe.Name})
	}
	if cafe.Address != nil {
		updateObj = append(updateObj, bson.E{Key: "address", Value: cafe.Address})
	}
	if cafe.Phone != nil {
		updateObj = append(updateObj, bson.E{Key: "phone", Value: cafe.Phone})
	}

	// Plan changes are a super admin operation; they also restart the
	// subscription window.
	if cafe.Plan_id != nil {
		if callerRole != models.RoleSuperAdmin {
			http.Error(w, `{"success": false, "message": "Only the super admin can change plans"}`, http.StatusForbidden)
			return
		}

		var plan models.Plan
		if err := planCollection.FindOne(ctx, bson.M{"plan_id": cafe.Plan_id}).Decode(&plan); err != nil {
			http.Error(w, `{"success": false, "message": "Invalid plan ID, plan not found"}`, http.StatusNotFound)
			return
		}
		if !plan.Active {
			http.Error(w, `{"success": false, "message": "Plan is no longer offered"}`, http.StatusBadRequest)
			return
		}

		updateObj = append(updateObj, bson.E{Key: "plan_id", Value: cafe.Plan_id})
		updateObj = append(updateObj, bson.E{Key: "subscription_expires_at", Value: time.Now().AddDate(0, 0, *plan.Duration_days)})
	}

	if len(updateObj) == 0 {
		http.Error(w, `{"success": false, "message": "No fields to update"}`, http.StatusBadRequest)
		return
	}

	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	opt := options.Update().SetUpsert(false)
	result, err := cafeCollection.UpdateOne(ctx, bson.M{"cafe_id": cafeId}, bson.D{{Key: "$set", Value: updateObj}}, opt)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Cafe update failed"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Cafe not found"}`, http.StatusNotFound)
		return
	}

	var updatedCafe models.Cafe
	if err := cafeCollection.FindOne(ctx, bson.M{"cafe_id": cafeId}).Decode(&updatedCafe); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated cafe"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Cafe updated successfully",
		"data":    updatedCafe,
	})
}

// DeactivateCafe soft-disables a cafe; its data stays for reporting.
func DeactivateCafe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cafeId := mux.Vars(r)["cafe_id"]

	update := bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}}
	result, err := cafeCollection.UpdateOne(ctx, bson.M{"cafe_id": cafeId}, update)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Cafe deactivation failed"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Cafe not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Cafe deactivated successfully",
	})
}

// requireOpenCafe loads a cafe and rejects ordering when it is disabled
// or its subscription has lapsed.
func requireOpenCafe(ctx context.Context, cafeID string) (*models.Cafe, error) {
	var cafe models.Cafe
	if err := cafeCollection.FindOne(ctx, bson.M{"cafe_id": cafeID}).Decode(&cafe); err != nil {
		return nil, err
	}
	if !cafe.Active {
		return nil, errors.New("cafe is not active")
	}
	if cafe.Subscription_expires_at.Before(time.Now()) {
		return nil, errors.New("cafe subscription has expired")
	}
	return &cafe, nil
}
