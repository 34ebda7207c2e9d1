package model

// Beer is a single tap assignment on the wall. Everything beyond the tap
// number and name is optional; nil means the value has not been entered.
type Beer struct {
	ID        uint     `gorm:"primaryKey"          json:"id"`
	TapNumber int      `gorm:"column:tap_number;not null" json:"tap_number"`
	Name      string   `gorm:"not null"            json:"name"`
	Style     *string  `json:"style"`
	ABV       *float64 `gorm:"column:abv"          json:"abv"`
	OG        *float64 `gorm:"column:og"           json:"og"`
	SG        *float64 `gorm:"column:sg"           json:"sg"`
	IBU       *int     `gorm:"column:ibu"          json:"ibu"`
	EBC       *int     `gorm:"column:ebc"          json:"ebc"`
	ImageID   *uint    `gorm:"column:image_id"     json:"image_id"`
}

// TableName keeps the table name used by earlier releases so existing
// database files stay readable. The on-disk table also carries a legacy
// `image` text column (filesystem path) that is no longer mapped here.
func (Beer) TableName() string { return "beer" }

// BeerCreate is the payload for creating a beer. Numeric stats are
// pointers so that zero values survive the trip.
type BeerCreate struct {
	TapNumber *int     `json:"tap_number" validate:"required"`
	Name      string   `json:"name"       validate:"required"`
	Style     *string  `json:"style"`
	ABV       *float64 `json:"abv"`
	OG        *float64 `json:"og"`
	SG        *float64 `json:"sg"`
	IBU       *int     `json:"ibu"`
	EBC       *int     `json:"ebc"`
}

// BeerUpdate carries PATCH semantics: a field left out of the request is
// untouched, a field set to null is cleared, a field with a value is
// replaced. Optional keeps the three states apart.
type BeerUpdate struct {
	TapNumber Optional[int]     `json:"tap_number"`
	Name      Optional[string]  `json:"name"`
	Style     Optional[string]  `json:"style"`
	ABV       Optional[float64] `json:"abv"`
	OG        Optional[float64] `json:"og"`
	SG        Optional[float64] `json:"sg"`
	IBU       Optional[int]     `json:"ibu"`
	EBC       Optional[int]     `json:"ebc"`
}

// Changes returns the column assignments for the fields present in the
// payload. Explicit nulls map to nil values.
func (u BeerUpdate) Changes() map[string]any {
	changes := map[string]any{}

	applyChange(changes, "tap_number", u.TapNumber)
	applyChange(changes, "name", u.Name)
	applyChange(changes, "style", u.Style)
	applyChange(changes, "abv", u.ABV)
	applyChange(changes, "og", u.OG)
	applyChange(changes, "sg", u.SG)
	applyChange(changes, "ibu", u.IBU)
	applyChange(changes, "ebc", u.EBC)

	return changes
}
