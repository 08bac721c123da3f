package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	RoleUser       = "user"
	RoleInfluencer = "influencer"
	RoleAdmin      = "admin"
)

const (
	VerificationNotSubmitted = "not_submitted"
	VerificationPending      = "pending"
	VerificationApproved     = "approved"
	VerificationRejected     = "rejected"
)

// User is role-tagged: the profile columns only carry data for
// influencers, admins and plain users leave them null.
type User struct {
	ID                    uuid.UUID      `db:"id"`
	Email                 string         `db:"email"`
	PasswordHash          string         `db:"password_hash"`
	Phone                 sql.NullString `db:"phone"`
	GoogleID              sql.NullString `db:"google_id"`
	Role                  string         `db:"role"`
	IsVerified            bool           `db:"is_verified"`
	Name                  sql.NullString `db:"name"`
	ProfilePicture        sql.NullString `db:"profile_picture"`
	ProfilePhotos         pq.StringArray `db:"profile_photos"`
	Bio                   sql.NullString `db:"bio"`
	SocialLinks           []byte         `db:"social_links"`
	VerificationStatus    sql.NullString `db:"verification_status"`
	VerificationDocuments pq.StringArray `db:"verification_documents"`
	CommissionPercentage  sql.NullInt64  `db:"commission_percentage"`
	CreatedAt             time.Time      `db:"created_at"`
	UpdatedAt             sql.NullTime   `db:"updated_at"`
}
