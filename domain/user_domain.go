package domain

import "errors"

var (
	MessageSuccessRegister   = "user registered successfully"
	MessageSuccessLogin      = "login successful"
	MessageSuccessGetProfile = "profile retrieved successfully"
	MessageSuccessUpdateUser = "profile updated successfully"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetProfile = "failed to retrieve profile"
	MessageFailedUpdateUser = "failed to update profile"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid user role")
)

type (
	RegisterUserRequest struct {
		Username   string   `json:"username" validate:"required"`
		Email      string   `json:"email" validate:"required,email"`
		Password   string   `json:"password" validate:"required,min=8"`
		Role       string   `json:"role" validate:"required,oneof=donor beneficiary admin"`
		Phone      string   `json:"phone"`
		Address    string   `json:"address"`
		City       string   `json:"city"`
		State      string   `json:"state"`
		PostalCode string   `json:"postal_code"`
		Country    string   `json:"country"`
		Latitude   *float64 `json:"latitude"`
		Longitude  *float64 `json:"longitude"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}

	UpdateUserRequest struct {
		Username   string   `json:"username"`
		Phone      string   `json:"phone"`
		Address    string   `json:"address"`
		City       string   `json:"city"`
		State      string   `json:"state"`
		PostalCode string   `json:"postal_code"`
		Country    string   `json:"country"`
		Latitude   *float64 `json:"latitude"`
		Longitude  *float64 `json:"longitude"`
	}

	User struct {
		ID         string   `json:"id"`
		Username   string   `json:"username"`
		Email      string   `json:"email"`
		Role       string   `json:"role"`
		Phone      string   `json:"phone,omitempty"`
		Address    string   `json:"address,omitempty"`
		City       string   `json:"city,omitempty"`
		State      string   `json:"state,omitempty"`
		PostalCode string   `json:"postal_code,omitempty"`
		Country    string   `json:"country,omitempty"`
		Latitude   *float64 `json:"latitude,omitempty"`
		Longitude  *float64 `json:"longitude,omitempty"`
		IsActive   bool     `json:"is_active"`
	}
)
