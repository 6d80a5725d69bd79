package handler

import (
	"net/http"

	"starfaves/internal/middleware"
	"starfaves/internal/models"
	"starfaves/internal/repository"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	repo *repository.FavoriteRepository
}

func NewFavoriteHandler(repo *repository.FavoriteRepository) *FavoriteHandler {
	return &FavoriteHandler{repo: repo}
}

func (h *FavoriteHandler) AddPlanet(c *gin.Context) {
	id, err := pathID(c, "planet_id")
	if err != nil {
		respondErr(c, err)
		return
	}
	h.add(c, models.PlanetTarget(id))
}

func (h *FavoriteHandler) AddPerson(c *gin.Context) {
	id, err := pathID(c, "people_id")
	if err != nil {
		respondErr(c, err)
		return
	}
	h.add(c, models.PersonTarget(id))
}

func (h *FavoriteHandler) RemovePlanet(c *gin.Context) {
	id, err := pathID(c, "planet_id")
	if err != nil {
		respondErr(c, err)
		return
	}
	h.remove(c, models.PlanetTarget(id))
}

func (h *FavoriteHandler) RemovePerson(c *gin.Context) {
	id, err := pathID(c, "people_id")
	if err != nil {
		respondErr(c, err)
		return
	}
	h.remove(c, models.PersonTarget(id))
}

// add inserts without checking the target exists first; a dangling id
// fails the foreign-key constraint and comes back as a client error.
func (h *FavoriteHandler) add(c *gin.Context, target models.FavoriteTarget) {
	fav, err := h.repo.Add(middleware.GetUserID(c), target)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, fav)
}

func (h *FavoriteHandler) remove(c *gin.Context, target models.FavoriteTarget) {
	if err := h.repo.Remove(middleware.GetUserID(c), target); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}
