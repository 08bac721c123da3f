package response

import "github.com/google/uuid"

type User struct {
	ID                 uuid.UUID         `json:"id"`
	Email              string            `json:"email"`
	Role               string            `json:"role"`
	IsVerified         bool              `json:"is_verified"`
	Phone              string            `json:"phone,omitempty"`
	Name               string            `json:"name,omitempty"`
	ProfilePicture     string            `json:"profile_picture,omitempty"`
	ProfilePhotos      []string          `json:"profile_photos,omitempty"`
	Bio                string            `json:"bio,omitempty"`
	SocialLinks        map[string]string `json:"social_links,omitempty"`
	VerificationStatus string            `json:"verification_status,omitempty"`
}

type AuthToken struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
