package endpoint

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/erinskieasy/calm-yuh-mind/middleware"
	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// Search origin used throughout: New York City.
const (
	originLat = 40.7128
	originLon = -74.0060
)

type seededTherapist struct {
	name        string
	lat, lon    *float64
	specialties []string
	virtual     bool
}

func ptr(f float64) *float64 { return &f }

func seedTherapistDirectory(t *testing.T, db *gorm.DB) {
	t.Helper()

	seeds := []seededTherapist{
		{name: "Manhattan", lat: ptr(40.7300), lon: ptr(-73.9900), specialties: []string{"Anxiety"}, virtual: true},
		{name: "Newark", lat: ptr(40.7357), lon: ptr(-74.1724), specialties: []string{"Depression", "Trauma"}, virtual: false},
		{name: "Philadelphia", lat: ptr(39.9526), lon: ptr(-75.1652), specialties: []string{"anxiety disorders"}, virtual: true},
		{name: "NoCoords", lat: nil, lon: nil, specialties: []string{"Anxiety"}, virtual: true},
	}

	for i, s := range seeds {
		user := createTestUser(t, db, "Dr. "+s.name, fmt.Sprintf("t%d@example.com", i), model.RoleTherapist)
		profile := model.TherapistProfile{
			UserID:        user.ID,
			Bio:           s.name,
			Specialties:   s.specialties,
			Latitude:      s.lat,
			Longitude:     s.lon,
			OffersVirtual: s.virtual,
		}
		if err := db.Create(&profile).Error; err != nil {
			t.Fatalf("failed to seed therapist %s: %v", s.name, err)
		}
	}
}

func nearbyRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	r, db := setupEndpointTest(t)
	client := createTestUser(t, db, "Searcher", "searcher@example.com", model.RoleClient)
	r.GET("/api/therapists/nearby", authAs(client.ID, client.RoleID), ListNearbyTherapists)
	return r, db
}

func bios(results []interface{}) []string {
	out := make([]string, 0, len(results))
	for _, item := range results {
		out = append(out, item.(map[string]interface{})["bio"].(string))
	}
	return out
}

func TestNearbyNoFiltersReturnsStoreOrder(t *testing.T) {
	r, db := nearbyRouter(t)
	seedTherapistDirectory(t, db)

	w := doRequest(t, r, requestParams{method: "GET", path: "/api/therapists/nearby"})
	assertSuccess(t, w)

	results := dataArray(t, w)
	assert.Equal(t, []string{"Manhattan", "Newark", "Philadelphia", "NoCoords"}, bios(results))
	for _, item := range results {
		_, hasDistance := item.(map[string]interface{})["distance"]
		assert.False(t, hasDistance, "no distance without request coordinates")
	}
}

func TestNearbySortsByDistanceWithUnrankedLast(t *testing.T) {
	r, db := nearbyRouter(t)
	seedTherapistDirectory(t, db)

	path := fmt.Sprintf("/api/therapists/nearby?latitude=%f&longitude=%f", originLat, originLon)
	w := doRequest(t, r, requestParams{method: "GET", path: path})
	assertSuccess(t, w)

	results := dataArray(t, w)
	assert.Equal(t, []string{"Manhattan", "Newark", "Philadelphia", "NoCoords"}, bios(results))

	// Ranked profiles carry ascending distances; the coordinate-less profile has none.
	prev := -1.0
	for _, item := range results[:3] {
		d := item.(map[string]interface{})["distance"].(float64)
		assert.Greater(t, d, prev)
		prev = d
	}
	_, hasDistance := results[3].(map[string]interface{})["distance"]
	assert.False(t, hasDistance)
}

func TestNearbyMaxDistanceFilter(t *testing.T) {
	r, db := nearbyRouter(t)
	seedTherapistDirectory(t, db)

	path := fmt.Sprintf("/api/therapists/nearby?latitude=%f&longitude=%f&maxDistance=50", originLat, originLon)
	w := doRequest(t, r, requestParams{method: "GET", path: path})
	assertSuccess(t, w)

	// Philadelphia (~130 km) is beyond the cutoff; the coordinate-less
	// profile is excluded because no distance can be computed for it.
	results := dataArray(t, w)
	assert.Equal(t, []string{"Manhattan", "Newark"}, bios(results))
	for _, item := range results {
		d := item.(map[string]interface{})["distance"].(float64)
		assert.LessOrEqual(t, d, 50.0)
	}
}

func TestNearbySpecialtyMatchIsCaseInsensitiveSubstring(t *testing.T) {
	r, db := nearbyRouter(t)
	seedTherapistDirectory(t, db)

	w := doRequest(t, r, requestParams{method: "GET", path: "/api/therapists/nearby?specialties=anxiety"})
	assertSuccess(t, w)

	// "Anxiety" matches case-insensitively; "anxiety disorders" by substring.
	assert.Equal(t, []string{"Manhattan", "Philadelphia", "NoCoords"}, bios(dataArray(t, w)))
}

func TestNearbyOffersVirtualFilter(t *testing.T) {
	r, db := nearbyRouter(t)
	seedTherapistDirectory(t, db)

	w := doRequest(t, r, requestParams{method: "GET", path: "/api/therapists/nearby?offersVirtual=true"})
	assertSuccess(t, w)

	results := dataArray(t, w)
	assert.Len(t, results, 3)
	for _, item := range results {
		assert.True(t, item.(map[string]interface{})["offers_virtual"].(bool))
	}
}

func TestNearbyMilesUnit(t *testing.T) {
	r, db := nearbyRouter(t)
	seedTherapistDirectory(t, db)

	kmPath := fmt.Sprintf("/api/therapists/nearby?latitude=%f&longitude=%f&maxDistance=50", originLat, originLon)
	miPath := kmPath + "&unit=mi"

	kmResults := dataArray(t, doRequest(t, r, requestParams{method: "GET", path: kmPath}))
	miResults := dataArray(t, doRequest(t, r, requestParams{method: "GET", path: miPath}))
	assert.Equal(t, len(kmResults), len(miResults), "the cutoff is always kilometers")

	km := kmResults[0].(map[string]interface{})["distance"].(float64)
	mi := miResults[0].(map[string]interface{})["distance"].(float64)
	assert.InDelta(t, km*0.621371, mi, 0.001)
}

func TestNearbyMalformedParamsRejected(t *testing.T) {
	r, db := nearbyRouter(t)
	seedTherapistDirectory(t, db)

	badPaths := []string{
		"/api/therapists/nearby?latitude=abc&longitude=-74.0",
		"/api/therapists/nearby?latitude=40.7&longitude=oops",
		"/api/therapists/nearby?latitude=40.7&longitude=-74.0&maxDistance=fifty",
		"/api/therapists/nearby?latitude=40.7", // longitude missing
		"/api/therapists/nearby?longitude=-74.0",
		"/api/therapists/nearby?offersVirtual=maybe",
		"/api/therapists/nearby?unit=leagues",
	}
	for _, path := range badPaths {
		w := doRequest(t, r, requestParams{method: "GET", path: path})
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestNearbyEmptyResultIsNotAnError(t *testing.T) {
	r, db := nearbyRouter(t)
	seedTherapistDirectory(t, db)

	// Origin in Tokyo, tight radius: nothing matches.
	w := doRequest(t, r, requestParams{method: "GET", path: "/api/therapists/nearby?latitude=35.6762&longitude=139.6503&maxDistance=10"})
	assertSuccess(t, w)
	assert.Len(t, dataArray(t, w), 0)
}

func TestNearbyIncludesNestedUser(t *testing.T) {
	r, db := nearbyRouter(t)
	seedTherapistDirectory(t, db)

	w := doRequest(t, r, requestParams{method: "GET", path: "/api/therapists/nearby"})
	assertSuccess(t, w)

	first := dataArray(t, w)[0].(map[string]interface{})
	user, ok := first["user"].(map[string]interface{})
	assert.True(t, ok, "results embed the owning user")
	assert.Equal(t, "Dr. Manhattan", user["name"])
	assert.NotContains(t, user, "password")
}

func TestUpsertTherapistProfileCreateThenUpdate(t *testing.T) {
	r, db := setupEndpointTest(t)
	therapist := createTestUser(t, db, "Dr. Prof", "prof@example.com", model.RoleTherapist)
	r.PUT("/api/therapists/profile", authAs(therapist.ID, therapist.RoleID), UpsertTherapistProfile)

	body := map[string]interface{}{
		"bio":               "First save",
		"specialties":       []string{"Anxiety"},
		"latitude":          40.0,
		"longitude":         -74.0,
		"accepting_clients": true,
	}
	w := doRequest(t, r, requestParams{method: "PUT", path: "/api/therapists/profile", body: body})
	assertSuccess(t, w)

	var count int64
	db.Model(&model.TherapistProfile{}).Count(&count)
	assert.Equal(t, int64(1), count)

	body["bio"] = "Second save"
	w = doRequest(t, r, requestParams{method: "PUT", path: "/api/therapists/profile", body: body})
	assertSuccess(t, w)

	db.Model(&model.TherapistProfile{}).Count(&count)
	assert.Equal(t, int64(1), count, "second save updates in place")

	var profile model.TherapistProfile
	assert.NoError(t, db.Where("user_id = ?", therapist.ID).First(&profile).Error)
	assert.Equal(t, "Second save", profile.Bio)
}

func TestUpsertTherapistProfileCoordinateValidation(t *testing.T) {
	r, db := setupEndpointTest(t)
	therapist := createTestUser(t, db, "Dr. Range", "range@example.com", model.RoleTherapist)
	r.PUT("/api/therapists/profile", authAs(therapist.ID, therapist.RoleID), UpsertTherapistProfile)

	bad := []map[string]interface{}{
		{"latitude": 91.0, "longitude": 0.0},
		{"latitude": 0.0, "longitude": 181.0},
		{"latitude": 40.0}, // longitude missing
	}
	for _, body := range bad {
		w := doRequest(t, r, requestParams{method: "PUT", path: "/api/therapists/profile", body: body})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestTherapistProfileRequiresTherapistRole(t *testing.T) {
	r, db := setupEndpointTest(t)
	client := createTestUser(t, db, "Just A Client", "client@example.com", model.RoleClient)
	r.PUT("/api/therapists/profile",
		authAs(client.ID, client.RoleID),
		middleware.RequireRole(model.RoleTherapist),
		UpsertTherapistProfile)

	w := doRequest(t, r, requestParams{method: "PUT", path: "/api/therapists/profile", body: map[string]interface{}{"bio": "nope"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
