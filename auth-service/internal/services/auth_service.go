package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"dreamforge-app/auth-service/internal/models"
	"dreamforge-app/auth-service/internal/utils"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthService struct {
	userRepo UserRepository
	jwtUtil  *utils.JWTUtil
	redis    *utils.RedisClient
}

type UserRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)
	GetUserByID(userID primitive.ObjectID) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(userID primitive.ObjectID) (int64, error)
}

func NewAuthService(userRepo UserRepository, jwtUtil *utils.JWTUtil, redis *utils.RedisClient) *AuthService {
	return &AuthService{userRepo: userRepo, jwtUtil: jwtUtil, redis: redis}
}

func (s *AuthService) Register(user *models.User) (string, error) {
	existing, _ := s.userRepo.FindUserByEmail(user.Email)
	if existing != nil {
		return "", errors.New("user already exists")
	}

	if err := utils.ValidateStruct(user); err != nil {
		return "", err
	}

	if err := user.HashPassword(); err != nil {
		return "", err
	}

	createdUser, err := s.userRepo.CreateUser(user)
	if err != nil {
		return "", err
	}

	return s.jwtUtil.GenerateToken(createdUser.ID.Hex(), createdUser.Role)
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		log.Printf("User not found: %s", email)
		return "", errors.New("invalid credentials")
	}

	if user.Banned {
		log.Printf("User is banned: %s", email)
		return "", errors.New("user is banned")
	}

	if err := user.ComparePassword(password); err != nil {
		log.Printf("Password comparison failed for user %s: %v", email, err)
		return "", errors.New("invalid credentials")
	}

	return s.jwtUtil.GenerateToken(user.ID.Hex(), user.Role)
}

func (s *AuthService) GetProfile(userID primitive.ObjectID) (*models.User, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("user_profile:%s", userID.Hex())

	var cachedUser models.User
	if err := s.redis.Get(ctx, cacheKey, &cachedUser); err == nil {
		return &cachedUser, nil
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if err := s.redis.Set(ctx, cacheKey, user, 5*time.Minute); err != nil {
		log.Printf("Failed to cache user profile: %v", err)
	}

	return user, nil
}

func (s *AuthService) Validate(token string) (*jwt.Token, error) {
	return s.jwtUtil.ValidateToken(token)
}

// DeleteUser is the administrative delete-by-id used by the account
// deletion cascade. An already-absent id is reported as such so the caller
// can answer 404, which the cascade treats as converged.
func (s *AuthService) DeleteUser(userID primitive.ObjectID) (bool, error) {
	deleted, err := s.userRepo.DeleteUser(userID)
	if err != nil {
		return false, err
	}

	cacheKey := fmt.Sprintf("user_profile:%s", userID.Hex())
	_ = s.redis.Delete(context.Background(), cacheKey)

	return deleted > 0, nil
}
