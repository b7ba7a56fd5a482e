package model

import (
	"time"

	"github.com/google/uuid"
)

// LinkModel is the GORM-specific struct for the 'links' table.
// The variant-specific columns are flat; only the ones matching Type are meaningful.
type LinkModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_links_user_position,priority:1"`
	Type        string    `gorm:"type:varchar(20);not null;default:'general'"`
	Title       string    `gorm:"type:varchar(255);not null"`
	URL         string    `gorm:"type:text;not null"`
	Icon        string    `gorm:"type:varchar(64);not null;default:''"`
	Position    int       `gorm:"not null;default:0;index:idx_links_user_position,priority:2"`
	ClickCount  int64     `gorm:"not null;default:0"`
	Description string    `gorm:"type:text;not null;default:''"`
	ImageURL    string    `gorm:"type:text;not null;default:''"`
	Price       *float64  `gorm:"type:numeric(12,2)"`
	Platform    string    `gorm:"type:varchar(64);not null;default:''"`
	EmbedType   string    `gorm:"type:varchar(32);not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LinkModel) TableName() string {
	return "links"
}

// LinkClickModel is the GORM-specific struct for the 'link_clicks' table.
type LinkClickModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	LinkID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_link_clicks_user_time,priority:1"`
	Referrer  string    `gorm:"type:text;not null;default:''"`
	UserAgent string    `gorm:"type:text;not null;default:''"`
	IPHash    string    `gorm:"type:char(64);not null;default:''"`
	ClickedAt time.Time `gorm:"not null;index:idx_link_clicks_user_time,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (LinkClickModel) TableName() string {
	return "link_clicks"
}
