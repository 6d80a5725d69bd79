package handler

import (
	"net/http"
	"strconv"

	"starfaves/internal/apperr"
	"starfaves/internal/repository"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only people and planet listings.
type CatalogHandler struct {
	personRepo *repository.PersonRepository
	planetRepo *repository.PlanetRepository
}

func NewCatalogHandler(personRepo *repository.PersonRepository, planetRepo *repository.PlanetRepository) *CatalogHandler {
	return &CatalogHandler{personRepo: personRepo, planetRepo: planetRepo}
}

func (h *CatalogHandler) ListPeople(c *gin.Context) {
	people, err := h.personRepo.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	out := make([]gin.H, 0, len(people))
	for _, p := range people {
		out = append(out, gin.H{"id": p.ID, "name": p.Name})
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) GetPerson(c *gin.Context) {
	id, err := pathID(c, "people_id")
	if err != nil {
		respondErr(c, err)
		return
	}
	p, err := h.personRepo.GetByID(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID, "name": p.Name})
}

func (h *CatalogHandler) ListPlanets(c *gin.Context) {
	planets, err := h.planetRepo.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	out := make([]gin.H, 0, len(planets))
	for _, p := range planets {
		out = append(out, gin.H{"id": p.ID, "name": p.Name})
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) GetPlanet(c *gin.Context) {
	id, err := pathID(c, "planet_id")
	if err != nil {
		respondErr(c, err)
		return
	}
	p, err := h.planetRepo.GetByID(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID, "name": p.Name})
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("invalid " + name)
	}
	return uint(id), nil
}
