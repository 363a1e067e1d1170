package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/plot"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ListingHandler struct {
	listingSvc *service.ListingService
}

func NewListingHandler(listingSvc *service.ListingService) *ListingHandler {
	return &ListingHandler{listingSvc: listingSvc}
}

// Browse returns active listing cards filtered and sorted by query params.
// GET /api/v1/plots?search=&plot_type=&price_min=&price_max=&facing=&road_width=&state=&locations=a,b&sort_by=recent
func (h *ListingHandler) Browse(c *fiber.Ctx) error {
	criteria := parseCriteria(c)

	cards, err := h.listingSvc.Browse(c.Context(), criteria)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load listings"})
	}
	if cards == nil {
		cards = []model.ListingCard{}
	}

	return c.JSON(fiber.Map{"plots": cards, "count": len(cards)})
}

// Get returns one listing in full.
// GET /api/v1/plots/:id
func (h *ListingHandler) Get(c *fiber.Ctx) error {
	l, err := h.listingSvc.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "listing not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to load listing"})
	}
	return c.JSON(l)
}

// FilterOptions returns the selector values the browse page offers.
// GET /api/v1/plots/filter-options
func (h *ListingHandler) FilterOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"popular_cities": model.PopularCities,
		"plot_types":     model.PlotTypes,
		"sort_options":   []string{plot.SortRecent, plot.SortPriceLow, plot.SortPriceHigh, plot.SortArea},
		"price_max":      plot.DefaultMaxPrice,
	})
}

// Compare resolves explicit listing ids for the side-by-side view. Capped at
// four; unknown ids drop out silently.
// GET /api/v1/plots/compare?ids=a,b,c
func (h *ListingHandler) Compare(c *fiber.Ctx) error {
	var ids []string
	for _, id := range strings.Split(c.Query("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "ids query parameter is required"})
	}

	listings, err := h.listingSvc.GetForCompare(c.Context(), ids)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load listings"})
	}
	if listings == nil {
		listings = []model.Listing{}
	}

	return c.JSON(fiber.Map{"plots": listings})
}

// MyListings returns the authenticated seller's own listings, drafts included.
// GET /api/v1/my/plots
func (h *ListingHandler) MyListings(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	listings, err := h.listingSvc.ListOwn(c.Context(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load listings"})
	}
	if listings == nil {
		listings = []model.Listing{}
	}

	return c.JSON(fiber.Map{"plots": listings})
}

func parseCriteria(c *fiber.Ctx) plot.Criteria {
	criteria := plot.DefaultCriteria()

	criteria.Search = c.Query("search")
	if v := c.Query("plot_type"); v != "" {
		criteria.PlotType = v
	}
	if v := c.Query("facing"); v != "" {
		criteria.Facing = v
	}
	if v := c.Query("road_width"); v != "" {
		criteria.RoadWidth = v
	}
	criteria.State = c.Query("state")

	if v := c.Query("price_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.PriceMin = f
		}
	}
	if v := c.Query("price_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.PriceMax = f
		}
	}

	if v := c.Query("locations"); v != "" {
		for _, loc := range strings.Split(v, ",") {
			if loc = strings.TrimSpace(loc); loc != "" {
				criteria.Locations = append(criteria.Locations, loc)
			}
		}
	}

	switch v := c.Query("sort_by"); v {
	case plot.SortRecent, plot.SortPriceLow, plot.SortPriceHigh, plot.SortArea:
		criteria.SortBy = v
	}

	return criteria
}
