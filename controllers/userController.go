package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	database "github.com/nikunjj1175/Cafe_Order_Management_Backend/config"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/helper"
	middleware "github.com/nikunjj1175/Cafe_Order_Management_Backend/middlewares"
	"github.com/nikunjj1175/Cafe_Order_Management_Backend/models"
)

var userCollection *mongo.Collection = database.OpenCollection(database.Client, "user")
var validate = validator.New()

// SignUp bootstraps the platform: it only works while no super admin
// exists yet. Every later account is created by an admin via CreateStaff.
func SignUp(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	count, err := userCollection.CountDocuments(ctx, bson.M{"role": models.RoleSuperAdmin})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking existing accounts"}`, http.StatusInternalServerError)
		return
	}
	if count > 0 {
		http.Error(w, `{"success": false, "message": "Signup is closed, ask an admin to create your account"}`, http.StatusForbidden)
		return
	}

	user.Role = models.RoleSuperAdmin
	user.Cafe_id = ""

	if validationErr := validate.Struct(user); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Invalid user data"}`, http.StatusBadRequest)
		return
	}

	emailCount, err := userCollection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking email"}`, http.StatusInternalServerError)
		return
	}
	if emailCount > 0 {
		http.Error(w, `{"success": false, "message": "Email already exists"}`, http.StatusConflict)
		return
	}

	password := HashPassword(*user.Password)
	user.Password = &password

	user.Created_at = time.Now()
	user.Updated_at = time.Now()
	user.ID = primitive.NewObjectID()
	user.User_id = user.ID.Hex()

	token, refreshToken, _ := helper.GenerateAllTokens(*user.Email, *user.First_name, *user.Last_name, user.User_id, user.Role, user.Cafe_id)
	user.Token = &token
	user.Refresh_Token = &refreshToken

	if _, insertErr := userCollection.InsertOne(ctx, user); insertErr != nil {
		http.Error(w, `{"success": false, "message": "User creation failed"}`, http.StatusInternalServerError)
		return
	}

	user.Password = nil

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Super admin created successfully",
		"data":    user,
	})
}

func Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var user models.User
	var foundUser models.User

	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	err := userCollection.FindOne(ctx, bson.M{"email": user.Email}).Decode(&foundUser)
	if err != nil {
		http.Error(w, `{"success": false, "message": "User not found"}`, http.StatusUnauthorized)
		return
	}

	passwordIsValid, msg := VerifyPassword(*user.Password, *foundUser.Password)
	if !passwordIsValid {
		http.Error(w, `{"success": false, "message": "`+msg+`"}`, http.StatusUnauthorized)
		return
	}

	token, refreshToken, _ := helper.GenerateAllTokens(*foundUser.Email, *foundUser.First_name, *foundUser.Last_name, foundUser.User_id, foundUser.Role, foundUser.Cafe_id)
	helper.UpdateAllTokens(token, refreshToken, foundUser.User_id)

	// Create a response struct excluding the password
	responseUser := struct {
		Email        string `json:"email"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		UserID       string `json:"user_id"`
		Role         string `json:"role"`
		CafeID       string `json:"cafe_id"`
		Token        string `json:"token"`
		RefreshToken string `json:"refresh_token"`
	}{
		Email:        *foundUser.Email,
		FirstName:    *foundUser.First_name,
		LastName:     *foundUser.Last_name,
		UserID:       foundUser.User_id,
		Role:         foundUser.Role,
		CafeID:       foundUser.Cafe_id,
		Token:        token,
		RefreshToken: refreshToken,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responseUser)
}

func Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, _, uid := middleware.GetUserFromContext(r)

	update := bson.M{"$set": bson.M{"token": "", "refresh_token": "", "updated_at": time.Now()}}
	if _, err := userCollection.UpdateOne(ctx, bson.M{"user_id": uid}, update); err != nil {
		http.Error(w, `{"success": false, "message": "Logout failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}

// CreateStaff lets an admin (or super admin) provision staff accounts.
// Cafe admins can only create staff inside their own cafe.
func CreateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	callerRole, callerCafe := middleware.GetRoleFromContext(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if callerRole == models.RoleAdmin {
		user.Cafe_id = callerCafe
	}

	if user.Role == models.RoleSuperAdmin {
		http.Error(w, `{"success": false, "message": "Cannot create a super admin account"}`, http.StatusForbidden)
		return
	}

	if validationErr := validate.Struct(user); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Invalid user data"}`, http.StatusBadRequest)
		return
	}

	// Staff must belong to an existing cafe
	cafeCount, err := cafeCollection.CountDocuments(ctx, bson.M{"cafe_id": user.Cafe_id})
	if err != nil || cafeCount == 0 {
		http.Error(w, `{"success": false, "message": "Invalid cafe ID, cafe not found"}`, http.StatusNotFound)
		return
	}

	emailCount, err := userCollection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking email"}`, http.StatusInternalServerError)
		return
	}
	if emailCount > 0 {
		http.Error(w, `{"success": false, "message": "Email already exists"}`, http.StatusConflict)
		return
	}

	password := HashPassword(*user.Password)
	user.Password = &password

	user.Created_at = time.Now()
	user.Updated_at = time.Now()
	user.ID = primitive.NewObjectID()
	user.User_id = user.ID.Hex()

	if _, insertErr := userCollection.InsertOne(ctx, user); insertErr != nil {
		http.Error(w, `{"success": false, "message": "User creation failed"}`, http.StatusInternalServerError)
		return
	}

	user.Password = nil

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Staff account created successfully",
		"data":    user,
	})
}

// GetUsers lists staff, cafe-scoped for cafe admins, paginated.
func GetUsers(w http.ResponseWriter, r *http.Request) {
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
	}

	matchStage := bson.D{{Key: "$match", Value: filter}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}
	projectStage := bson.D{
		{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "email", Value: 1},
			{Key: "first_name", Value: 1},
			{Key: "last_name", Value: 1},
			{Key: "user_id", Value: 1},
			{Key: "role", Value: 1},
			{Key: "cafe_id", Value: 1},
		}},
	}

	result, err := userCollection.Aggregate(ctx, mongo.Pipeline{matchStage, skipStage, limitStage, projectStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error occurred while listing users"}`, http.StatusInternalServerError)
		return
	}

	var allUsers []bson.M
	if err = result.All(ctx, &allUsers); err != nil {
		log.Fatal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Users retrieved successfully",
		"data":    allUsers,
	})
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	params := mux.Vars(r)
	userId := params["user_id"]

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"user_id": userId}).Decode(&user)
	if err != nil {
		http.Error(w, `{"success": false, "message": "User not found"}`, http.StatusNotFound)
		return
	}

	callerRole, callerCafe := middleware.GetRoleFromContext(r)
	if callerRole != models.RoleSuperAdmin && user.Cafe_id != callerCafe {
		http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
		return
	}

	responseUser := struct {
		FirstName string    `json:"first_name"`
		LastName  string    `json:"last_name"`
		Email     string    `json:"email"`
		Phone     string    `json:"phone"`
		Role      string    `json:"role"`
		CafeID    string    `json:"cafe_id"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
		UserID    string    `json:"user_id"`
	}{
		FirstName: *user.First_name,
		LastName:  *user.Last_name,
		Email:     *user.Email,
		Phone:     *user.Phone,
		Role:      user.Role,
		CafeID:    user.Cafe_id,
		CreatedAt: user.Created_at,
		UpdatedAt: user.Updated_at,
		UserID:    user.User_id,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responseUser)
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(userPassword string, providedPassword string) (bool, string) {
	if err := bcrypt.CompareHashAndPassword([]byte(providedPassword), []byte(userPassword)); err != nil {
		return false, "Incorrect password"
	}
	return true, ""
}
