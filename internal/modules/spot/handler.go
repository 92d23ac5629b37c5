package spot

import (
	"errors"
	"net/http"
	"strconv"

	"staybnb/internal/middleware"
	"staybnb/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the spots resource. The protected group must
// already carry the auth middleware; existence/ownership guards are
// attached per route in the documented order.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup, guard *middleware.SpotGuard) {
	public.GET("/spots", h.List)
	public.GET("/spots/:spotId", guard.RequireSpot(), h.GetByID)
	public.GET("/spots/:spotId/reviews", guard.RequireSpot(), h.ListReviews)

	protected.GET("/spots/current", h.ListCurrent)
	protected.POST("/spots", h.Create)
	protected.POST("/spots/:spotId/images", h.AddImage)
	protected.PUT("/spots/:spotId", guard.RequireSpot(), guard.RequireOwner(), h.Update)
	protected.DELETE("/spots/:spotId", guard.RequireSpot(), guard.RequireOwner(), h.Delete)
	protected.GET("/spots/:spotId/bookings", guard.RequireSpot(), h.ListBookings)
}

// List handles GET /spots: every spot with avgRating and previewImage
// attached. No pagination, filtering or sorting.
func (h *Handler) List(c *gin.Context) {
	spots, err := h.service.ListSpots(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get spots")
		return
	}

	c.JSON(http.StatusOK, gin.H{"Spots": spots})
}

// ListCurrent handles GET /spots/current: the caller's own spots.
func (h *Handler) ListCurrent(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	spots, err := h.service.ListSpotsByOwner(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get spots")
		return
	}

	c.JSON(http.StatusOK, gin.H{"Spots": spots})
}

// GetByID handles GET /spots/:spotId. The response is an array holding
// the single shaped spot, which is the published contract of this route.
func (h *Handler) GetByID(c *gin.Context) {
	spotID, _ := strconv.ParseInt(c.Param("spotId"), 10, 64)

	detail, err := h.service.GetSpot(c.Request.Context(), spotID)
	if err != nil {
		if errors.Is(err, ErrSpotNotFound) {
			response.Error(c, http.StatusNotFound, "Spot couldn't be found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get spot")
		return
	}

	c.JSON(http.StatusOK, []SpotDetail{*detail})
}

// Create handles POST /spots. The owner is the authenticated caller;
// any ownerId in the body is ignored.
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var payload SpotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := payload.Validate(); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	spot, err := h.service.CreateSpot(c.Request.Context(), userID, payload)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create spot")
		return
	}

	c.JSON(http.StatusCreated, spot)
}

// AddImage handles POST /spots/:spotId/images.
func (h *Handler) AddImage(c *gin.Context) {
	spotID, err := strconv.ParseInt(c.Param("spotId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Spot couldn't be found")
		return
	}

	var req AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	img, err := h.service.AddImage(c.Request.Context(), spotID, req)
	if err != nil {
		if errors.Is(err, ErrSpotNotFound) {
			response.Error(c, http.StatusNotFound, "Spot couldn't be found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to add image")
		return
	}

	c.JSON(http.StatusOK, ImageInfo{ID: img.ID, URL: img.URL, Preview: img.Preview})
}

// Update handles PUT /spots/:spotId: full replace of the nine editable
// fields, persisted before the response.
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("user_id")
	spotID, _ := strconv.ParseInt(c.Param("spotId"), 10, 64)

	var payload SpotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := payload.Validate(); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	spot, err := h.service.UpdateSpot(c.Request.Context(), userID, spotID, payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrSpotNotFound):
			response.Error(c, http.StatusNotFound, "Spot couldn't be found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "Spot must belong to the current user")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update spot")
		}
		return
	}

	c.JSON(http.StatusOK, spot)
}

// Delete handles DELETE /spots/:spotId.
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	spotID, _ := strconv.ParseInt(c.Param("spotId"), 10, 64)

	if err := h.service.DeleteSpot(c.Request.Context(), userID, spotID); err != nil {
		switch {
		case errors.Is(err, ErrSpotNotFound):
			response.Error(c, http.StatusNotFound, "Spot couldn't be found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "Spot must belong to the current user")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete spot")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Successfully deleted",
		"statusCode": http.StatusOK,
	})
}

// ListBookings handles GET /spots/:spotId/bookings. The spot's owner
// sees full rows with renter identity; everyone else gets the redacted
// shape protecting renter privacy.
func (h *Handler) ListBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")
	spotID, _ := strconv.ParseInt(c.Param("spotId"), 10, 64)

	bookings, isOwner, err := h.service.ListBookings(c.Request.Context(), userID, spotID)
	if err != nil {
		if errors.Is(err, ErrSpotNotFound) {
			response.Error(c, http.StatusNotFound, "Spot couldn't be found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get bookings")
		return
	}

	if isOwner {
		c.JSON(http.StatusOK, gin.H{"Bookings": shapeBookingsForOwner(bookings)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Bookings": shapeBookingsPublic(bookings)})
}

// ListReviews handles GET /spots/:spotId/reviews.
func (h *Handler) ListReviews(c *gin.Context) {
	spotID, _ := strconv.ParseInt(c.Param("spotId"), 10, 64)

	reviews, err := h.service.ListReviews(c.Request.Context(), spotID)
	if err != nil {
		if errors.Is(err, ErrSpotNotFound) {
			response.Error(c, http.StatusNotFound, "Spot couldn't be found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get reviews")
		return
	}

	c.JSON(http.StatusOK, gin.H{"Reviews": reviews})
}
