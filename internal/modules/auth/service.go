package auth

import (
	"golang.org/x/crypto/bcrypt"

	jwtsvc "pricna/internal/pkg/jwt"
)

const RoleAdmin = "admin"

// Service authenticates the single admin account. The credential lives in
// the environment (username + bcrypt hash), not in the database: the site
// has exactly one back-office user.
type Service struct {
	adminUsername     string
	adminPasswordHash string
	jwt               *jwtsvc.Service
}

func NewService(adminUsername, adminPasswordHash string, jwt *jwtsvc.Service) *Service {
	return &Service{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		jwt:               jwt,
	}
}

// Login checks the credential pair and issues a signed, time-limited token.
// Both failure modes report the same error so nothing leaks about which
// half was wrong.
func (s *Service) Login(req LoginRequest) (*LoginResponse, error) {
	if req.Username != s.adminUsername {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(req.Username, RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User:  UserInfo{Username: req.Username, Role: RoleAdmin},
	}, nil
}
