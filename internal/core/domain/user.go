package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidUser         = errors.New("invalid user")
	ErrUserAlreadyDeleted  = errors.New("user already deleted")
	ErrInvalidDeleteReason = errors.New("invalid delete reason")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

// DeletedReason is the soft-delete state of a user. Active is the only live
// state; any other value is a deletion reason code.
type DeletedReason int

const (
	Active          DeletedReason = 0
	ReasonWithdrawn DeletedReason = 1
)

// MaxPasswordLength is the longest password bcrypt accepts, in bytes.
const MaxPasswordLength = 72

// IsLive reports whether the state is Active.
func (r DeletedReason) IsLive() bool { return r == Active }

// User is an account record. Account is the natural key; ID is the storage key.
type User struct {
	ID            uint          `gorm:"primaryKey"`
	Account       string        `gorm:"size:64;not null"`
	Password      string        `gorm:"size:255;not null"`
	Nickname      string        `gorm:"size:64"`
	Email         string        `gorm:"size:255"`
	PhoneNumber   string        `gorm:"size:32"`
	Area          string        `gorm:"size:128"`
	Height        int
	Weight        int
	DeletedReason DeletedReason `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (User) TableName() string {
	return "users"
}

// IsLive reports whether the user has not been soft-deleted.
func (u *User) IsLive() bool {
	return u.DeletedReason.IsLive()
}

// Delete moves a live user into the deleted state. The row is kept.
func (u *User) Delete(reason DeletedReason) error {
	if reason == Active {
		return ErrInvalidDeleteReason
	}
	if !u.IsLive() {
		return ErrUserAlreadyDeleted
	}
	u.DeletedReason = reason
	return nil
}

// Restore makes the user live again. Restoring a live user is a no-op.
func (u *User) Restore() {
	u.DeletedReason = Active
}

// UserPatch carries a partial update. A nil field leaves the stored value
// untouched; a non-nil field overwrites it, including with the zero value.
type UserPatch struct {
	Password    *string
	Nickname    *string
	Email       *string
	PhoneNumber *string
	Area        *string
	Height      *int
	Weight      *int
}

// Apply merges the patch into u field by field. Password is expected to be
// hashed by the caller before the patch is applied.
func (p UserPatch) Apply(u *User) {
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Nickname != nil {
		u.Nickname = *p.Nickname
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
	if p.Area != nil {
		u.Area = *p.Area
	}
	if p.Height != nil {
		u.Height = *p.Height
	}
	if p.Weight != nil {
		u.Weight = *p.Weight
	}
}

// UserAction names a lifecycle transition recorded in the audit trail.
type UserAction string

const (
	UserCreated  UserAction = "created"
	UserUpdated  UserAction = "updated"
	UserDeleted  UserAction = "deleted"
	UserRestored UserAction = "restored"
)

// UserEvent is an audit record of a single lifecycle mutation.
type UserEvent struct {
	Account       string
	Action        UserAction
	DeletedReason DeletedReason
	OccurredAt    time.Time
}
