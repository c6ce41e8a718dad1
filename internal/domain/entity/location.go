package entity

// LocationType classifies a location directory entry.
type LocationType string

// Location types.
const (
	LocationTypeCountry LocationType = "Country"
	LocationTypeCity    LocationType = "City"
	LocationTypeVillage LocationType = "Village"
)

// Location is an entry in the location directory. Countries are bulk
// seeded from an external directory API; cities and villages are entered
// by hand. ParentLocationID is a loose reference with no referential
// integrity: deleting the parent leaves the child pointing at nothing.
type Location struct {
	ID               int          `json:"id"`
	Name             string       `json:"name"`
	Type             LocationType `json:"type"`
	CountryCode      string       `json:"countryCode,omitempty"`
	ParentLocationID *int         `json:"parentLocationId,omitempty"`
}
