package model

import "time"

type Account struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Email        string    `json:"email" bson:"email"`
	FullName     string    `json:"full_name" bson:"full_name"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

type Registration struct {
	Username string `json:"username" validate:"required,min=4,username"`
	Password string `json:"password" validate:"required,min=8,password_policy"`
	Email    string `json:"email" validate:"required,account_email"`
	FullName string `json:"full_name" validate:"required"`
}

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Account     *Account  `json:"user"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
