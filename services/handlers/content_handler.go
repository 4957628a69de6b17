package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aquasnap/aqua_api/shared"
)

type ContentHandler struct {
	catalogSvc CatalogServiceInterface
}

func NewContentHandler(catalogSvc CatalogServiceInterface) *ContentHandler {
	return &ContentHandler{catalogSvc: catalogSvc}
}

// @Summary List species
// @Description The full marine species catalog
// @Tags content
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]model.MarineSpecies}
// @Router /api/v1/content/species [get]
func (h *ContentHandler) ListSpecies(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.catalogSvc.Species())
}

// @Summary Get species
// @Description One species catalog entry
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Species ID"
// @Success 200 {object} shared.Response{data=model.MarineSpecies}
// @Router /api/v1/content/species/{id} [get]
func (h *ContentHandler) GetSpecies(c *fiber.Ctx) error {
	species, err := h.catalogSvc.SpeciesByID(c.Params("id"))
	if err != nil {
		return shared.NewNotFoundError(err, "Species not found")
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", species)
}

// @Summary Fish shop
// @Description Fish available for purchase
// @Tags content
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]model.ShopFish}
// @Router /api/v1/content/shop [get]
func (h *ContentHandler) ListShopFish(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.catalogSvc.ShopFish())
}

// @Summary Trivia categories
// @Description Categories covered by the trivia question bank
// @Tags content
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]string}
// @Router /api/v1/content/trivia-categories [get]
func (h *ContentHandler) ListTriviaCategories(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.catalogSvc.TriviaCategories())
}

// @Summary Learning resources
// @Description Curated marine learning material
// @Tags content
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=[]model.LearningResource}
// @Router /api/v1/content/resources [get]
func (h *ContentHandler) ListResources(c *fiber.Ctx) error {
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", h.catalogSvc.LearningResources())
}
