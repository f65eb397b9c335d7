package objects

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrCatalogDisabled is returned when no database backs the catalog.
	ErrCatalogDisabled = errors.New("object catalog is disabled")
	// ErrNotCataloged is returned when the catalog has no record for a key.
	ErrNotCataloged = errors.New("object not found in catalog")
)

// Record is the blob metadata kept next to the object store.
type Record struct {
	Bucket      string    `gorm:"primaryKey;size:255" json:"bucket"`
	Key         string    `gorm:"column:object_key;primaryKey;size:512" json:"key"`
	ContentType string    `gorm:"size:255" json:"content_type"`
	Size        int64     `json:"size"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the gorm table name.
func (Record) TableName() string {
	return "object_records"
}

// Catalog stores Records in the database. Keys are always normalized keys.
type Catalog struct {
	db *gorm.DB
}

// NewCatalog creates a catalog over db.
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// Migrate creates or updates the catalog table.
func (c *Catalog) Migrate() error {
	return c.db.AutoMigrate(&Record{})
}

// Put inserts or replaces the record for rec.Bucket and rec.Key.
func (c *Catalog) Put(ctx context.Context, rec *Record) error {
	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(rec).Error
}

// Get returns the record for a normalized key.
func (c *Catalog) Get(ctx context.Context, bucket, key string) (*Record, error) {
	var rec Record
	err := c.db.WithContext(ctx).
		Where("bucket = ? AND object_key = ?", bucket, key).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotCataloged
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Remove deletes the record for a normalized key. Removing an absent record is not an error.
func (c *Catalog) Remove(ctx context.Context, bucket, key string) error {
	return c.db.WithContext(ctx).
		Where("bucket = ? AND object_key = ?", bucket, key).
		Delete(&Record{}).Error
}
