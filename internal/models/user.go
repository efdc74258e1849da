package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription plans. Premium unlocks the full template catalog.
const (
	PlanBasic   = "basic"
	PlanPremium = "premium"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`

	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"` // Argon2id hash, never serialized outward

	ProfileImageURL  string `bson:"profile_image_url,omitempty" json:"profileImageUrl,omitempty"`
	SubscriptionPlan string `bson:"subscription_plan" json:"subscriptionPlan"`

	EmailVerified       bool       `bson:"email_verified" json:"emailVerified"`
	VerificationToken   string     `bson:"verification_token,omitempty" json:"-"`
	VerificationExpires *time.Time `bson:"verification_expires,omitempty" json:"-"`
}

// AuthResponse is the public view of a user returned by the auth endpoints.
// Token is only populated on login.
type AuthResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	ProfileImageURL  string    `json:"profileImageUrl,omitempty"`
	SubscriptionPlan string    `json:"subscriptionPlan"`
	EmailVerified    bool      `json:"emailVerified"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	Token            string    `json:"token,omitempty"`
}

// ToAuthResponse strips the credential and verification secrets from a user.
func (u *User) ToAuthResponse() AuthResponse {
	return AuthResponse{
		ID:               u.ID.Hex(),
		Name:             u.Name,
		Email:            u.Email,
		ProfileImageURL:  u.ProfileImageURL,
		SubscriptionPlan: u.SubscriptionPlan,
		EmailVerified:    u.EmailVerified,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
