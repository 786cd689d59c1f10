package handler

import "time"

// errorResponse is the standard error envelope returned on 4xx/5xx responses
// outside the user endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Users ---

type createUserRequest struct {
	Account     string `json:"account"     validate:"required,max=64"`
	Password    string `json:"password"    validate:"required,max=72"`
	Nickname    string `json:"nickname"    validate:"required,max=64"`
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=32"`
	Area        string `json:"area"        validate:"max=128"`
	Height      int    `json:"height"      validate:"gte=0"`
	Weight      int    `json:"weight"      validate:"gte=0"`
}

// updateUserRequest carries a partial update. Absent and null fields are nil.
type updateUserRequest struct {
	Password    *string `json:"password"    validate:"omitempty,min=1,max=72"`
	Nickname    *string `json:"nickname"    validate:"omitempty,max=64"`
	Email       *string `json:"email"       validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=32"`
	Area        *string `json:"area"        validate:"omitempty,max=128"`
	Height      *int    `json:"height"      validate:"omitempty,gte=0"`
	Weight      *int    `json:"weight"      validate:"omitempty,gte=0"`
}

// userResponse is the public view of a user. The password never leaves the
// service.
type userResponse struct {
	ID            uint       `json:"id"`
	Account       string     `json:"account"`
	Nickname      string     `json:"nickname"`
	Email         string     `json:"email"`
	PhoneNumber   string     `json:"phoneNumber"`
	Area          string     `json:"area"`
	Height        int        `json:"height"`
	Weight        int        `json:"weight"`
	DeletedReason int        `json:"deletedReason"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// emptyUser is the body of every 400 on the user endpoints.
var emptyUser = userResponse{}

// --- Sessions ---

type createSessionRequest struct {
	Account  string `json:"account"  validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Key       string    `json:"key"`
	Account   string    `json:"account"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// --- Catalog ---

type createCompanyRequest struct {
	Name      string `json:"name"      validate:"required,max=128"`
	CreatedBy string `json:"createdBy" validate:"max=64"`
}

type companyResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type createClothesRequest struct {
	Name      string `json:"name"      validate:"required,max=128"`
	Part      string `json:"part"      validate:"required"`
	CompanyID uint   `json:"companyId" validate:"required,gt=0"`
	CreatedBy string `json:"createdBy" validate:"max=64"`
}

type clothesResponse struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	Part      string           `json:"part"`
	CompanyID uint             `json:"companyId"`
	Company   *companyResponse `json:"company,omitempty"`
	CreatedBy string           `json:"createdBy"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
