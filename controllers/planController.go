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
	"go.mongodb.org/mongo-driver/mongo/options"

	database "github.com/nikunjj1175/Cafe_Order_Management_Backend/config"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

var planCollection *mongo.Collection = database.OpenCollection(database.Client, "plan")

func GetPlans(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	result, err := planCollection.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving plans"}`, http.StatusInternalServerError)
		return
	}

	var allPlans []models.Plan
	if err = result.All(ctx, &allPlans); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding plan data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Plans retrieved successfully",
		"data":    allPlans,
	})
}

func GetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	planId := mux.Vars(r)["plan_id"]

	var plan models.Plan
	if err := planCollection.FindOne(ctx, bson.M{"plan_id": planId}).Decode(&plan); err != nil {
		http.Error(w, `{"success": false, "message": "Plan not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Plan retrieved successfully",
		"data":    plan,
	})
}

func CreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var plan models.Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(plan); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Invalid plan data"}`, http.StatusBadRequest)
		return
	}

	plan.Created_at = time.Now()
	plan.Updated_at = time.Now()
	plan.ID = primitive.NewObjectID()
	plan.Plan_id = plan.ID.Hex()
	plan.Active = true

	if _, err := planCollection.InsertOne(ctx, plan); err != nil {
		http.Error(w, `{"success": false, "message": "Plan creation failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Plan created successfully",
		"data":    plan,
	})
}

func UpdatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	planId := mux.Vars(r)["plan_id"]

	var plan models.Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	updateObj := bson.D{}

	if plan.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: plan.Name})
	}
	if plan.Price != nil {
		updateObj = append(updateObj, bson.E{Key: "price", Value: plan.Price})
	}
	if plan.Duration_days != nil {
		updateObj = append(updateObj, bson.E{Key: "duration_days", Value: plan.Duration_days})
	}
	if plan.Max_tables != nil {
		updateObj = append(updateObj, bson.E{Key: "max_tables", Value: plan.Max_tables})
	}
	if plan.Max_menu_items != nil {
		updateObj = append(updateObj, bson.E{Key: "max_menu_items", Value: plan.Max_menu_items})
	}

	if len(updateObj) == 0 {
		http.Error(w, `{"success": false, "message": "No fields to update"}`, http.StatusBadRequest)
		return
	}

	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	opt := options.Update().SetUpsert(false)
	result, err := planCollection.UpdateOne(ctx, bson.M{"plan_id": planId}, bson.D{{Key: "$set", Value: updateObj}}, opt)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Plan update failed"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Plan not found"}`, http.StatusNotFound)
		return
	}

	var updatedPlan models.Plan
	if err := planCollection.FindOne(ctx, bson.M{"plan_id": planId}).Decode(&updatedPlan); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated plan"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Plan updated successfully",
		"data":    updatedPlan,
	})
}

// DeactivatePlan retires a plan instead of deleting it; cafes already on
// the plan keep it until their subscription lapses.
func DeactivatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	planId := mux.Vars(r)["plan_id"]

	update := bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}}
	result, err := planCollection.UpdateOne(ctx, bson.M{"plan_id": planId}, update)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Plan deactivation failed"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Plan not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Plan deactivated successfully",
	})
}

// findActivePlan loads the plan backing a cafe, used for limit checks.
func findActivePlan(ctx context.Context, cafe *models.Cafe) (*models.Plan, error) {
	if cafe.Plan_id == nil {
		return nil, errors.New("cafe has no plan")
	}

	var plan models.Plan
	if err := planCollection.FindOne(ctx, bson.M{"plan_id": *cafe.Plan_id}).Decode(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
