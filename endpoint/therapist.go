package endpoint

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/erinskieasy/calm-yuh-mind/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type upsertTherapistProfileRequest struct {
	Bio               string   `json:"bio"`
	Credentials       string   `json:"credentials"`
	Specialties       []string `json:"specialties"`
	YearsOfExperience int      `json:"years_of_experience"`
	AcceptingClients  bool     `json:"accepting_clients"`
	StreetAddress     string   `json:"street_address"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	PostalCode        string   `json:"postal_code"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	Phone             string   `json:"phone"`
	Website           string   `json:"website"`
	OffersVirtual     bool     `json:"offers_virtual"`
	OffersInPerson    bool     `json:"offers_in_person"`
}

// nearbyQuery holds the parsed, validated search filters. Coordinates are
// either both present or both nil.
type nearbyQuery struct {
	Latitude      *float64
	Longitude     *float64
	MaxDistanceKm *float64
	Specialty     string
	OffersVirtual *bool
	Unit          string
}

// GetTherapistProfile returns the authenticated therapist's own profile row.
func GetTherapistProfile(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	var profile model.TherapistProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Profile not found", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve profile", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Profile retrieved", Data: profile})
}

// UpsertTherapistProfile creates the caller's profile row on first save and
// updates it afterwards. Only therapist-role users reach this handler.
func UpsertTherapistProfile(c *gin.Context) {
	var req upsertTherapistProfileRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}

	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: err.Error(), Err: err})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	var profile model.TherapistProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to load profile", Err: err})
		return
	}

	profile.UserID = userID
	profile.Bio = req.Bio
	profile.Credentials = req.Credentials
	profile.Specialties = req.Specialties
	profile.YearsOfExperience = req.YearsOfExperience
	profile.AcceptingClients = req.AcceptingClients
	profile.StreetAddress = req.StreetAddress
	profile.City = req.City
	profile.State = req.State
	profile.PostalCode = req.PostalCode
	profile.Latitude = req.Latitude
	profile.Longitude = req.Longitude
	profile.Phone = req.Phone
	profile.Website = req.Website
	profile.OffersVirtual = req.OffersVirtual
	profile.OffersInPerson = req.OffersInPerson

	if err := db.Save(&profile).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save profile", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Profile saved", Data: profile})
}

// ListNearbyTherapists godoc
// @Summary      Search the therapist directory
// @Description  Filter therapists by distance, specialty, and virtual offering
// @Tags         Therapists
// @Produce      json
// @Security     SessionToken
// @Param        latitude query number false "Search origin latitude (requires longitude)"
// @Param        longitude query number false "Search origin longitude (requires latitude)"
// @Param        maxDistance query number false "Maximum distance in kilometers"
// @Param        specialties query string false "Specialty search term"
// @Param        offersVirtual query boolean false "Only therapists offering virtual sessions"
// @Param        unit query string false "Distance unit in the response: km (default) or mi"
// @Success      200 {object} util.APIResponse "Ranked results"
// @Failure      400 {object} util.APIResponse "Malformed query parameter"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /api/therapists/nearby [get]
//
// Profiles without stored coordinates stay in the result set, sorted after
// every ranked profile, unless maxDistance is supplied; no distance can be
// computed for them, so a distance cutoff excludes them.
func ListNearbyTherapists(c *gin.Context) {
	query, err := parseNearbyQuery(c)
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: err.Error(), Err: err})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var profiles []model.TherapistProfile
	if err := db.Preload("User").Find(&profiles).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to load therapist profiles", Err: err})
		return
	}

	results := rankTherapists(profiles, query)

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Therapists retrieved", Data: results})
}

// parseNearbyQuery validates the query string. Malformed numerics are
// rejected here so a NaN can never reach the distance computation or sort.
func parseNearbyQuery(c *gin.Context) (nearbyQuery, error) {
	q := nearbyQuery{Specialty: c.Query("specialties"), Unit: "km"}

	lat, err := parseFloatQuery(c, "latitude")
	if err != nil {
		return q, err
	}
	lon, err := parseFloatQuery(c, "longitude")
	if err != nil {
		return q, err
	}
	if (lat == nil) != (lon == nil) {
		return q, fmt.Errorf("latitude and longitude must be supplied together")
	}
	q.Latitude, q.Longitude = lat, lon

	q.MaxDistanceKm, err = parseFloatQuery(c, "maxDistance")
	if err != nil {
		return q, err
	}

	if raw := c.Query("offersVirtual"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return q, fmt.Errorf("offersVirtual must be true or false")
		}
		q.OffersVirtual = &v
	}

	if raw := c.Query("unit"); raw != "" {
		if raw != "km" && raw != "mi" {
			return q, fmt.Errorf("unit must be km or mi")
		}
		q.Unit = raw
	}

	return q, nil
}

func parseFloatQuery(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid number", name)
	}
	return &v, nil
}

// rankTherapists applies the filter pipeline: distance annotation, distance
// cutoff, specialty match, virtual-offering flag, then the distance sort.
func rankTherapists(profiles []model.TherapistProfile, query nearbyQuery) []model.RankedTherapistResult {
	hasOrigin := query.Latitude != nil && query.Longitude != nil

	results := make([]model.RankedTherapistResult, 0, len(profiles))
	for _, profile := range profiles {
		result := model.RankedTherapistResult{
			TherapistProfile: profile,
			User:             profile.User.Public(),
		}

		if hasOrigin && profile.Latitude != nil && profile.Longitude != nil {
			d := util.HaversineKm(*query.Latitude, *query.Longitude, *profile.Latitude, *profile.Longitude)
			result.Distance = &d
		}

		// The cutoff is always in kilometers; profiles with no computable
		// distance are excluded whenever a cutoff is active.
		if query.MaxDistanceKm != nil {
			if result.Distance == nil || *result.Distance > *query.MaxDistanceKm {
				continue
			}
		}

		if query.Specialty != "" && !matchesSpecialty(profile.Specialties, query.Specialty) {
			continue
		}

		if query.OffersVirtual != nil && profile.OffersVirtual != *query.OffersVirtual {
			continue
		}

		results = append(results, result)
	}

	if hasOrigin {
		sort.SliceStable(results, func(i, j int) bool {
			di, dj := results[i].Distance, results[j].Distance
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			return *di < *dj
		})
	}

	if query.Unit == "mi" {
		for i := range results {
			if results[i].Distance != nil {
				mi := util.KmToMiles(*results[i].Distance)
				results[i].Distance = &mi
			}
		}
	}

	return results
}

// matchesSpecialty reports whether the search term matches any entry of the
// specialties array, case-insensitive substring semantics.
func matchesSpecialty(specialties []string, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	for _, s := range specialties {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

// validateCoordinates checks WGS84 ranges on profile saves. Both or neither
// coordinate must be present.
func validateCoordinates(lat, lon *float64) error {
	if (lat == nil) != (lon == nil) {
		return fmt.Errorf("latitude and longitude must be supplied together")
	}
	if lat == nil {
		return nil
	}
	if *lat < -90 || *lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if *lon < -180 || *lon > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}
