package handler

import (
	"github.com/advise-clothes/backend/internal/core/domain"
	"github.com/advise-clothes/backend/internal/core/ports"
)

// --- Request → Service input ---

func toCreateUserInput(req createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Account:     req.Account,
		Password:    req.Password,
		Nickname:    req.Nickname,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Area:        req.Area,
		Height:      req.Height,
		Weight:      req.Weight,
	}
}

func toUserPatch(req updateUserRequest) domain.UserPatch {
	return domain.UserPatch{
		Password:    req.Password,
		Nickname:    req.Nickname,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Area:        req.Area,
		Height:      req.Height,
		Weight:      req.Weight,
	}
}

// --- Domain → Response ---

func toUserResponse(u *domain.User) userResponse {
	createdAt, updatedAt := u.CreatedAt, u.UpdatedAt
	return userResponse{
		ID:            u.ID,
		Account:       u.Account,
		Nickname:      u.Nickname,
		Email:         u.Email,
		PhoneNumber:   u.PhoneNumber,
		Area:          u.Area,
		Height:        u.Height,
		Weight:        u.Weight,
		DeletedReason: int(u.DeletedReason),
		CreatedAt:     &createdAt,
		UpdatedAt:     &updatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		Key:       s.Key,
		Account:   s.Account,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

func toCompanyResponse(c *domain.Company) companyResponse {
	return companyResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toClothesResponse(c *domain.Clothes) clothesResponse {
	resp := clothesResponse{
		ID:        c.ID,
		Name:      c.Name,
		Part:      string(c.Part),
		CompanyID: c.CompanyID,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Company != nil {
		company := toCompanyResponse(c.Company)
		resp.Company = &company
	}
	return resp
}
