package handler

import (
	"net/http"

	"starfaves/internal/apperr"
	"starfaves/internal/middleware"
	"starfaves/internal/models"
	"starfaves/internal/repository"
	"starfaves/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userRepo *repository.UserRepository
	favRepo  *repository.FavoriteRepository
	authSvc  *service.AuthService
}

func NewUserHandler(userRepo *repository.UserRepository, favRepo *repository.FavoriteRepository, authSvc *service.AuthService) *UserHandler {
	return &UserHandler{userRepo: userRepo, favRepo: favRepo, authSvc: authSvc}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userRepo.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	out := make([]models.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summary())
	}
	c.JSON(http.StatusOK, out)
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsActive *bool  `json:"is_active"`
}

// Create handles POST /create_users. is_active defaults to true when
// omitted; the password is hashed before storage and never echoed.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperr.BadRequest("invalid request body"))
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondErr(c, apperr.BadRequest("username, email, and password are required"))
		return
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	u, err := h.authSvc.Register(req.Username, req.Email, req.Password, isActive)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, u.Summary())
}

// ListFavorites serves GET /users/favorites for the authenticated user.
func (h *UserHandler) ListFavorites(c *gin.Context) {
	h.listFavoritesFor(c, middleware.GetUserID(c))
}

// ListFavoritesByID serves GET /users/:user_id/favorites with an
// explicit user id.
func (h *UserHandler) ListFavoritesByID(c *gin.Context) {
	id, err := pathID(c, "user_id")
	if err != nil {
		respondErr(c, err)
		return
	}
	h.listFavoritesFor(c, id)
}

func (h *UserHandler) listFavoritesFor(c *gin.Context, userID uint) {
	if _, err := h.userRepo.GetByID(userID); err != nil {
		respondErr(c, err)
		return
	}
	favs, err := h.favRepo.ListByUserID(userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	if favs == nil {
		favs = []models.Favorite{}
	}
	c.JSON(http.StatusOK, favs)
}
