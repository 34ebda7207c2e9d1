package model

const (
	// SettingsID is the fixed key of the one and only display settings row.
	SettingsID = 1

	// DefaultTitle is the wall title seeded by the migration.
	DefaultTitle = "What's on Tap"
)

// DisplaySettings is the singleton configuration row for the public wall.
// The repository enforces the singleton through get-or-create at
// SettingsID; the row is only ever updated, never deleted.
type DisplaySettings struct {
	ID          uint   `gorm:"primaryKey"           json:"id"`
	Title       string `json:"title"`
	LogoImageID *uint  `gorm:"column:logo_image_id" json:"logo_image_id"`
}

// TableName matches the table created by earlier releases. The on-disk
// table keeps a legacy `logo` text column that is no longer mapped.
func (DisplaySettings) TableName() string { return "displaysettings" }

// DisplaySettingsUpdate is the PATCH payload for the settings row.
type DisplaySettingsUpdate struct {
	Title Optional[string] `json:"title"`
}

// Changes returns the column assignments present in the payload. An
// explicit null clears the title to the empty string; the column itself
// stays non-null.
func (u DisplaySettingsUpdate) Changes() map[string]any {
	changes := map[string]any{}

	if u.Title.Set {
		changes["title"] = u.Title.Value
	}

	return changes
}
