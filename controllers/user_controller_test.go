package controllers

import (
	"context"
	"errors"
	"gin-foody/constants"
	"gin-foody/dto"
	"gin-foody/middlewares"
	"gin-foody/models"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type stubUserService struct {
	existingEmails map[string]bool
	admins         map[string]bool
}

func (s *stubUserService) FindAll(ctx context.Context) (*[]models.User, error) {
	return &[]models.User{}, nil
}

func (s *stubUserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.existingEmails[email] {
		return &models.User{Email: email}, nil
	}
	return nil, errors.New(constants.ErrUserNotFound)
}

func (s *stubUserService) Create(ctx context.Context, input dto.CreateUserInput) (*models.User, error) {
	if s.existingEmails[input.Email] {
		return nil, errors.New(constants.ErrUserExists)
	}
	return &models.User{
		ID:    primitive.NewObjectID(),
		Name:  input.Name,
		Email: input.Email,
		Role:  constants.RoleUser,
	}, nil
}

func (s *stubUserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return errors.New(constants.ErrUserNotFound)
}

func (s *stubUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.admins[email], nil
}

func (s *stubUserService) GrantAdmin(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func newUserTestRouter(authedEmail string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewUserController(&stubUserService{
		existingEmails: map[string]bool{"taken@example.com": true},
		admins:         map[string]bool{"admin@example.com": true},
	})

	r := gin.New()
	if authedEmail != "" {
		r.Use(func(ctx *gin.Context) {
			ctx.Set(middlewares.ContextEmail, authedEmail)
		})
	}
	r.POST("/users", controller.Create)
	r.DELETE("/users/:id", controller.Delete)
	r.GET("/users/admin/:email", controller.CheckAdmin)
	return r
}

func TestCreateUser(t *testing.T) {
	r := newUserTestRouter("")

	body := `{"name":"New User","email":"new@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "new@example.com")
}

func TestCreateDuplicateUser(t *testing.T) {
	r := newUserTestRouter("")

	body := `{"name":"Taken","email":"taken@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrUserExists)
}

func TestCreateUserInvalidEmail(t *testing.T) {
	r := newUserTestRouter("")

	body := `{"name":"Bad","email":"not-an-email"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUnknownUser(t *testing.T) {
	r := newUserTestRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/users/"+primitive.NewObjectID().Hex(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUserInvalidID(t *testing.T) {
	r := newUserTestRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/users/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckAdminForOwnEmail(t *testing.T) {
	r := newUserTestRouter("admin@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/admin/admin@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":true}`, w.Body.String())
}

func TestCheckAdminForOwnNonAdminEmail(t *testing.T) {
	r := newUserTestRouter("user@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/admin/user@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":false}`, w.Body.String())
}

func TestCheckAdminForForeignEmail(t *testing.T) {
	// The target's actual role never matters on a mismatch.
	r := newUserTestRouter("user@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/admin/admin@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
