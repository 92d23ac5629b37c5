package spot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"staybnb/internal/database"
	"staybnb/internal/domain"
	"staybnb/internal/middleware"
	"staybnb/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:spot_handler_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Spot{},
		&domain.SpotImage{},
		&domain.Review{},
		&domain.Booking{},
	))

	spotRepo := repository.NewSpotRepository(db)
	imageRepo := repository.NewSpotImageRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	h := NewHandler(NewService(spotRepo, imageRepo, bookingRepo, reviewRepo))
	guard := middleware.NewSpotGuard(spotRepo)

	r := gin.New()
	// Stand-in for the JWT middleware: the test caller's id travels in a
	// header.
	r.Use(func(c *gin.Context) {
		if v := c.GetHeader("X-Test-User-ID"); v != "" {
			id, _ := strconv.ParseInt(v, 10, 64)
			c.Set("user_id", id)
		}
		c.Next()
	})

	api := r.Group("/api")
	protected := api.Group("/")
	h.RegisterRoutes(api, protected, guard)
	return r, db
}

func doJSONRequest(r http.Handler, method, path string, body any, userID int64) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-Test-User-ID", strconv.FormatInt(userID, 10))
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func seedUser(t *testing.T, db *gorm.DB, first, last string) *domain.User {
	t.Helper()
	u := &domain.User{Firstname: first, Lastname: last, Email: first + "@test.local"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedSpot(t *testing.T, db *gorm.DB, ownerID int64) *domain.Spot {
	t.Helper()
	s := &domain.Spot{
		OwnerID: ownerID,
		Address: "1 Main", City: "X", State: "Y", Country: "Z",
		Lat: 10, Lng: 20, Name: "A", Description: "d", Price: 5,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func spotBody() map[string]any {
	return map[string]any{
		"address": "1 Main", "city": "X", "state": "Y", "country": "Z",
		"lat": 10, "lng": 20, "name": "A", "description": "d", "price": 5,
	}
}

func TestCreateSpot_ValidationPerField(t *testing.T) {
	r, _ := setupTestRouter(t)

	cases := []struct {
		field   string
		message string
	}{
		{"address", "Street address is required"},
		{"city", "City is required"},
		{"state", "State is required"},
		{"country", "Country is required"},
		{"lat", "Latitude is not valid"},
		{"lng", "Longitude is not valid"},
		{"name", "Name must be less than 50 characters"},
		{"description", "Description is required"},
		{"price", "Price per day is required"},
	}

	for _, tc := range cases {
		body := spotBody()
		delete(body, tc.field)

		rr := doJSONRequest(r, http.MethodPost, "/api/spots", body, 1)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "missing %s", tc.field)

		resp := decodeBody(t, rr)
		assert.Equal(t, "Validation error", resp["message"])
		errs, ok := resp["errors"].(map[string]any)
		require.True(t, ok, "missing %s", tc.field)
		assert.Equal(t, tc.message, errs[tc.field])
	}
}

func TestCreateSpot_NameTooLong(t *testing.T) {
	r, _ := setupTestRouter(t)

	body := spotBody()
	body["name"] = "This name is far far far far far far far far too long!!"

	rr := doJSONRequest(r, http.MethodPost, "/api/spots", body, 1)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	errs := decodeBody(t, rr)["errors"].(map[string]any)
	assert.Equal(t, "Name must be less than 50 characters", errs["name"])
}

func TestCreateSpot_OwnerIDFromCallerNotBody(t *testing.T) {
	r, db := setupTestRouter(t)
	caller := seedUser(t, db, "ada", "hollis")

	body := spotBody()
	body["ownerId"] = 999 // attacker-supplied, must be ignored

	rr := doJSONRequest(r, http.MethodPost, "/api/spots", body, caller.ID)
	require.Equal(t, http.StatusCreated, rr.Code)

	resp := decodeBody(t, rr)
	assert.Equal(t, float64(caller.ID), resp["ownerId"])

	var stored domain.Spot
	require.NoError(t, db.First(&stored, int64(resp["id"].(float64))).Error)
	assert.Equal(t, caller.ID, stored.OwnerID)
}

func TestGetSpot_NotFound(t *testing.T) {
	r, _ := setupTestRouter(t)

	rr := doJSONRequest(r, http.MethodGet, "/api/spots/12345", nil, 0)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	resp := decodeBody(t, rr)
	assert.Equal(t, "Spot couldn't be found", resp["message"])
	assert.Equal(t, float64(404), resp["statusCode"])
}

func TestGetSpot_DetailShape(t *testing.T) {
	r, db := setupTestRouter(t)
	owner := seedUser(t, db, "ada", "hollis")
	s := seedSpot(t, db, owner.ID)
	require.NoError(t, db.Create(&domain.Review{SpotID: s.ID, UserID: 2, Stars: 4}).Error)
	require.NoError(t, db.Create(&domain.Review{SpotID: s.ID, UserID: 3, Stars: 2}).Error)
	require.NoError(t, db.Create(&domain.SpotImage{SpotID: s.ID, URL: "http://x/a.jpg", Preview: true}).Error)

	rr := doJSONRequest(r, http.MethodGet, fmt.Sprintf("/api/spots/%d", s.ID), nil, 0)
	require.Equal(t, http.StatusOK, rr.Code)

	var arr []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &arr))
	require.Len(t, arr, 1)

	spot := arr[0]
	assert.Equal(t, float64(2), spot["numReviews"])
	assert.Equal(t, float64(3), spot["avgRating"])
	assert.NotContains(t, spot, "Reviews")

	ownerObj := spot["Owner"].(map[string]any)
	assert.Equal(t, "ada", ownerObj["firstname"])
	assert.Equal(t, "hollis", ownerObj["lastname"])

	images := spot["SpotImages"].([]any)
	require.Len(t, images, 1)
	assert.Equal(t, "http://x/a.jpg", images[0].(map[string]any)["url"])
}

func TestGetSpot_NoReviewsNoAvgRating(t *testing.T) {
	r, db := setupTestRouter(t)
	owner := seedUser(t, db, "ada", "hollis")
	s := seedSpot(t, db, owner.ID)

	rr := doJSONRequest(r, http.MethodGet, fmt.Sprintf("/api/spots/%d", s.ID), nil, 0)
	require.Equal(t, http.StatusOK, rr.Code)

	var arr []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &arr))
	require.Len(t, arr, 1)
	assert.Equal(t, float64(0), arr[0]["numReviews"])
	assert.NotContains(t, arr[0], "avgRating")
}

func TestListSpots_Shaping(t *testing.T) {
	r, db := setupTestRouter(t)
	owner := seedUser(t, db, "ada", "hollis")

	rated := seedSpot(t, db, owner.ID)
	require.NoError(t, db.Create(&domain.Review{SpotID: rated.ID, UserID: 2, Stars: 5}).Error)
	require.NoError(t, db.Create(&domain.SpotImage{SpotID: rated.ID, URL: "http://x/first.jpg", Preview: true}).Error)
	require.NoError(t, db.Create(&domain.SpotImage{SpotID: rated.ID, URL: "http://x/second.jpg", Preview: true}).Error)

	bare := seedSpot(t, db, owner.ID)

	rr := doJSONRequest(r, http.MethodGet, "/api/spots", nil, 0)
	require.Equal(t, http.StatusOK, rr.Code)

	spots := decodeBody(t, rr)["Spots"].([]any)
	require.Len(t, spots, 2)

	byID := map[float64]map[string]any{}
	for _, raw := range spots {
		m := raw.(map[string]any)
		byID[m["id"].(float64)] = m
	}

	ratedResp := byID[float64(rated.ID)]
	assert.Equal(t, float64(5), ratedResp["avgRating"])
	assert.Equal(t, "http://x/first.jpg", ratedResp["previewImage"])
	assert.NotContains(t, ratedResp, "Reviews")
	assert.NotContains(t, ratedResp, "SpotImages")

	bareResp := byID[float64(bare.ID)]
	assert.NotContains(t, bareResp, "avgRating")
	assert.NotContains(t, bareResp, "previewImage")
}

func TestListCurrent_FiltersByOwner(t *testing.T) {
	r, db := setupTestRouter(t)
	mine := seedUser(t, db, "ada", "hollis")
	other := seedUser(t, db, "ben", "okafor")
	s := seedSpot(t, db, mine.ID)
	seedSpot(t, db, other.ID)

	rr := doJSONRequest(r, http.MethodGet, "/api/spots/current", nil, mine.ID)
	require.Equal(t, http.StatusOK, rr.Code)

	spots := decodeBody(t, rr)["Spots"].([]any)
	require.Len(t, spots, 1)
	assert.Equal(t, float64(s.ID), spots[0].(map[string]any)["id"])
}

func TestUpdateSpot_NonOwnerRejectedWithoutMutation(t *testing.T) {
	r, db := setupTestRouter(t)
	owner := seedUser(t, db, "ada", "hollis")
	intruder := seedUser(t, db, "ben", "okafor")
	s := seedSpot(t, db, owner.ID)

	body := spotBody()
	body["name"] = "Hijacked"

	rr := doJSONRequest(r, http.MethodPut, fmt.Sprintf("/api/spots/%d", s.ID), body, intruder.ID)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Spot must belong to the current user", decodeBody(t, rr)["message"])

	var stored domain.Spot
	require.NoError(t, db.First(&stored, s.ID).Error)
	assert.Equal(t, "A", stored.Name)
}

func TestUpdateSpot_OwnerFullReplace(t *testing.T) {
	r, db := setupTestRouter(t)
	owner := seedUser(t, db, "ada", "hollis")
	s := seedSpot(t, db, owner.ID)

	body := map[string]any{
		"address": "2 Side St", "city": "B", "state": "C", "country": "D",
		"lat": 30, "lng": 40, "name": "Renamed", "description": "new", "price": 9,
	}

	rr := doJSONRequest(r, http.MethodPut, fmt.Sprintf("/api/spots/%d", s.ID), body, owner.ID)
	require.Equal(t, http.StatusOK, rr.Code)

	var stored domain.Spot
	require.NoError(t, db.First(&stored, s.ID).Error)
	assert.Equal(t, "2 Side St", stored.Address)
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, 9.0, stored.Price)
}

func TestDeleteSpot_OwnerThenGetReturns404(t *testing.T) {
	r, db := setupTestRouter(t)
	owner := seedUser(t, db, "ada", "hollis")
	s := seedSpot(t, db, owner.ID)

	rr := doJSONRequest(r, http.MethodDelete, fmt.Sprintf("/api/spots/%d", s.ID), nil, owner.ID)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Successfully deleted", decodeBody(t, rr)["message"])

	rr = doJSONRequest(r, http.MethodGet, fmt.Sprintf("/api/spots/%d", s.ID), nil, 0)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteSpot_NonOwnerForbidden(t *testing.T) {
	r, db := setupTestRouter(t)
	owner := seedUser(t, db, "ada", "hollis")
	intruder := seedUser(t, db, "ben", "okafor")
	s := seedSpot(t, db, owner.ID)

	rr := doJSONRequest(r, http.MethodDelete, fmt.Sprintf("/api/spots/%d", s.ID), nil, intruder.ID)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	var count int64
	db.Model(&domain.Spot{}).Where("id = ?", s.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddImage_SpotMissing(t *testing.T) {
	r, _ := setupTestRouter(t)

	body := map[string]any{"url": "http://x/a.jpg", "preview": true}
	rr := doJSONRequest(r, http.MethodPost, "/api/spots/999/images", body, 1)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Spot couldn't be found", decodeBody(t, rr)["message"])
}

func TestAddImage_ReturnsOwnID(t *testing.T) {
	r, db := setupTestRouter(t)
	owner := seedUser(t, db, "ada", "hollis")
	seedSpot(t, db, owner.ID)
	second := seedSpot(t, db, owner.ID)

	body := map[string]any{"url": "http://x/a.jpg", "preview": true}
	rr := doJSONRequest(r, http.MethodPost, fmt.Sprintf("/api/spots/%d/images", second.ID), body, owner.ID)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeBody(t, rr)
	assert.Equal(t, "http://x/a.jpg", resp["url"])
	assert.Equal(t, true, resp["preview"])

	// The id is the image's own, not the spot's.
	var img domain.SpotImage
	require.NoError(t, db.First(&img, int64(resp["id"].(float64))).Error)
	assert.Equal(t, second.ID, img.SpotID)
	assert.NotEqual(t, float64(second.ID), resp["id"])
}

func TestListBookings_OwnerSeesRenterIdentity(t *testing.T) {
	r, db := setupTestRouter(t)
	owner := seedUser(t, db, "ada", "hollis")
	renter := seedUser(t, db, "ben", "okafor")
	s := seedSpot(t, db, owner.ID)

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&domain.Booking{
		SpotID: s.ID, UserID: renter.ID, StartDate: start, EndDate: start.AddDate(0, 0, 3),
	}).Error)

	rr := doJSONRequest(r, http.MethodGet, fmt.Sprintf("/api/spots/%d/bookings", s.ID), nil, owner.ID)
	require.Equal(t, http.StatusOK, rr.Code)

	bookings := decodeBody(t, rr)["Bookings"].([]any)
	require.Len(t, bookings, 1)

	b := bookings[0].(map[string]any)
	assert.Contains(t, b, "id")
	assert.Contains(t, b, "userId")
	assert.Contains(t, b, "createdAt")
	renterObj := b["User"].(map[string]any)
	assert.Equal(t, "ben", renterObj["firstname"])
}

func TestListBookings_NonOwnerRedacted(t *testing.T) {
	r, db := setupTestRouter(t)
	owner := seedUser(t, db, "ada", "hollis")
	renter := seedUser(t, db, "ben", "okafor")
	stranger := seedUser(t, db, "cleo", "marsh")
	s := seedSpot(t, db, owner.ID)

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&domain.Booking{
		SpotID: s.ID, UserID: renter.ID, StartDate: start, EndDate: start.AddDate(0, 0, 3),
	}).Error)

	rr := doJSONRequest(r, http.MethodGet, fmt.Sprintf("/api/spots/%d/bookings", s.ID), nil, stranger.ID)
	require.Equal(t, http.StatusOK, rr.Code)

	bookings := decodeBody(t, rr)["Bookings"].([]any)
	require.Len(t, bookings, 1)

	b := bookings[0].(map[string]any)
	assert.Contains(t, b, "spotId")
	assert.Contains(t, b, "startDate")
	assert.Contains(t, b, "endDate")
	assert.NotContains(t, b, "id")
	assert.NotContains(t, b, "userId")
	assert.NotContains(t, b, "User")
	assert.NotContains(t, b, "createdAt")
}

func TestListReviews(t *testing.T) {
	r, db := setupTestRouter(t)
	owner := seedUser(t, db, "ada", "hollis")
	s := seedSpot(t, db, owner.ID)
	require.NoError(t, db.Create(&domain.Review{SpotID: s.ID, UserID: 2, Stars: 4}).Error)

	rr := doJSONRequest(r, http.MethodGet, fmt.Sprintf("/api/spots/%d/reviews", s.ID), nil, 0)
	require.Equal(t, http.StatusOK, rr.Code)

	reviews := decodeBody(t, rr)["Reviews"].([]any)
	require.Len(t, reviews, 1)
	assert.Equal(t, float64(4), reviews[0].(map[string]any)["stars"])
}
