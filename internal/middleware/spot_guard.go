package middleware

import (
	"net/http"
	"strconv"

	"staybnb/internal/pkg/response"
	"staybnb/internal/repository"

	"github.com/gin-gonic/gin"
)

// SpotGuard provides the pre-handler checks shared by the spot routes:
// existence of the spot named in the path and ownership by the caller.
// The guards look the spot up themselves; downstream handlers repeat the
// lookup rather than relying on cached state.
type SpotGuard struct {
	spots *repository.SpotRepository
}

func NewSpotGuard(spots *repository.SpotRepository) *SpotGuard {
	return &SpotGuard{spots: spots}
}

// RequireSpot short-circuits with 404 when the spot in the "spotId" path
// param does not exist.
func (g *SpotGuard) RequireSpot() gin.HandlerFunc {
	return func(c *gin.Context) {
		spotID, err := strconv.ParseInt(c.Param("spotId"), 10, 64)
		if err != nil {
			response.AbortError(c, http.StatusNotFound, "Spot couldn't be found")
			return
		}

		if _, err := g.spots.GetByID(c.Request.Context(), spotID); err != nil {
			response.AbortError(c, http.StatusNotFound, "Spot couldn't be found")
			return
		}

		c.Next()
	}
}

// RequireOwner short-circuits with 403 when the authenticated caller does
// not own the spot. Must run after Auth and RequireSpot.
func (g *SpotGuard) RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		if userID == 0 {
			response.AbortError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		spotID, err := strconv.ParseInt(c.Param("spotId"), 10, 64)
		if err != nil {
			response.AbortError(c, http.StatusNotFound, "Spot couldn't be found")
			return
		}

		spot, err := g.spots.GetByID(c.Request.Context(), spotID)
		if err != nil {
			response.AbortError(c, http.StatusNotFound, "Spot couldn't be found")
			return
		}

		if spot.OwnerID != userID {
			response.AbortError(c, http.StatusForbidden, "Spot must belong to the current user")
			return
		}

		c.Next()
	}
}
