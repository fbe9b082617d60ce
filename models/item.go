package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/spf13/cast"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// OptionSnapshot is a denormalized copy of a catalog option embedded in an
// item at selection time. Editing the catalog later never changes snapshots
// already stored on items.
type OptionSnapshot struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Image string  `json:"image,omitempty"`
	Price float64 `json:"price"`
}

// UnmarshalJSON accepts price as a number or a numeric string; anything
// unparseable counts as zero instead of failing the whole payload. Older
// clients sent both shapes.
func (o *OptionSnapshot) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Image string `json:"image"`
		Price any    `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	o.ID = raw.ID
	o.Label = raw.Label
	o.Image = raw.Image
	o.Price, _ = cast.ToFloat64E(raw.Price)
	return nil
}

// Owner identifies who submitted a build.
type Owner struct {
	Name    string `json:"name,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// Custom types for JSONB columns (so we can add Scan/Value methods)
type (
	CategoryImageMap map[string][]OptionSnapshot
	ImageList        []string
	TagList          []string
)

// ═══════════════════════════════════════════════════════════
// Main Item Model (GORM)
// ═══════════════════════════════════════════════════════════

type Item struct {
	ID             int              `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string           `json:"name" gorm:"not null;index"`
	Make           string           `json:"make,omitempty" gorm:"size:128"`
	Model          string           `json:"model,omitempty" gorm:"size:128"`
	Year           int              `json:"year,omitempty"`
	Price          float64          `json:"price" gorm:"type:numeric(12,2)"`
	Currency       string           `json:"currency" gorm:"size:3;default:'USD'"`
	PricePoint     string           `json:"pricePoint,omitempty" gorm:"size:32"`
	Image          string           `json:"image,omitempty" gorm:"size:255"`
	CategoryImages CategoryImageMap `json:"category_images" gorm:"type:jsonb;not null;default:'{}'"`
	Images         ImageList        `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Description    string           `json:"description,omitempty" gorm:"type:text"`
	Tags           TagList          `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`
	Owner          Owner            `json:"owner" gorm:"type:jsonb;not null;default:'{}'"`
	Location       string           `json:"location,omitempty" gorm:"size:255"`
	Condition      string           `json:"condition,omitempty" gorm:"size:100"`
	SubmittedBy    string           `json:"submittedBy,omitempty" gorm:"size:255"`
	SubmittedOn    time.Time        `json:"submittedOn" gorm:"autoUpdateTime"`
	IsFeatured     bool             `json:"isFeatured" gorm:"default:false"`
	CreatedAt      time.Time        `json:"createdAt" gorm:"autoCreateTime"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "items"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// CreateItemRequest carries a new build. Name, price and category_images are
// gated by services.ValidateShape rather than binding tags so the error
// strings stay identical to what the client already expects. Price is
// deliberately untyped: it arrives as a number or a numeric string.
type CreateItemRequest struct {
	Name           string           `json:"name"`
	Make           string           `json:"make"`
	Model          string           `json:"model"`
	Year           int              `json:"year"`
	Price          any              `json:"price"`
	Currency       string           `json:"currency"`
	PricePoint     string           `json:"pricePoint"`
	Image          string           `json:"image"`
	CategoryImages CategoryImageMap `json:"category_images"`
	Images         ImageList        `json:"images"`
	Description    string           `json:"description"`
	Tags           TagList          `json:"tags"`
	Owner          *Owner           `json:"owner"`
	Location       string           `json:"location"`
	Condition      string           `json:"condition"`
	SubmittedBy    string           `json:"submittedBy"`
	IsFeatured     bool             `json:"isFeatured"`
}

// UpdateItemRequest is a partial update: only non-nil fields are written.
// Anything outside this whitelist is ignored.
type UpdateItemRequest struct {
	Name           *string           `json:"name"`
	Make           *string           `json:"make"`
	Model          *string           `json:"model"`
	Year           *int              `json:"year"`
	Price          any               `json:"price"`
	Currency       *string           `json:"currency"`
	PricePoint     *string           `json:"pricePoint"`
	Image          *string           `json:"image"`
	CategoryImages *CategoryImageMap `json:"category_images"`
	Images         *ImageList        `json:"images"`
	Description    *string           `json:"description"`
	Tags           *TagList          `json:"tags"`
	Owner          *Owner            `json:"owner"`
	Location       *string           `json:"location"`
	Condition      *string           `json:"condition"`
	SubmittedBy    *string           `json:"submittedBy"`
	IsFeatured     *bool             `json:"isFeatured"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom types)
// ═══════════════════════════════════════════════════════════

// CategoryImageMap methods
func (m *CategoryImageMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(CategoryImageMap)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan CategoryImageMap")
	}
	return json.Unmarshal(bytes, m)
}

func (m CategoryImageMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string][]OptionSnapshot{})
	}
	return json.Marshal(m)
}

// ImageList methods
func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ImageList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ImageList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// TagList methods
func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = make(TagList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TagList")
	}
	return json.Unmarshal(bytes, t)
}

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

// Owner methods
func (o *Owner) Scan(value interface{}) error {
	if value == nil {
		*o = Owner{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Owner")
	}
	return json.Unmarshal(bytes, o)
}

func (o Owner) Value() (driver.Value, error) {
	return json.Marshal(o)
}
