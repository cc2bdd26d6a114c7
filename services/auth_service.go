package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/entity"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/repository"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/session"
)

// AuthService handles signup and login. Passwords are bcrypt-hashed; the
// login contract (email + password) is otherwise the same as the forms.
type AuthService struct {
	Users *repository.UserRepository
}

func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{Users: users}
}

func sessionUser(u *entity.User) *session.User {
	return &session.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Register creates a user and returns the identity to attach to the
// session. Role defaults to student; only student and owner are accepted.
func (s *AuthService) Register(name, email, password, role string) (*session.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, ErrValidation
	}
	if role == "" {
		role = "student"
	}
	if role != "student" && role != "owner" {
		return nil, ErrValidation
	}

	count, err := s.Users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return sessionUser(user), nil
}

// Login verifies credentials. The error is the same for an unknown email
// and a wrong password.
func (s *AuthService) Login(email, password string) (*session.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	return sessionUser(user), nil
}
