package postgres

import (
	"testing"
	"time"

	"biolink/internal/domain/entity"
	"biolink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLinkDomain_ResolvesVariants(t *testing.T) {
	price := 19.5

	tests := []struct {
		name  string
		model *model.LinkModel
		want  entity.LinkDetails
	}{
		{
			name:  "general",
			model: &model.LinkModel{Type: "general", Description: "blog"},
			want:  entity.GeneralDetails{Description: "blog"},
		},
		{
			name:  "social",
			model: &model.LinkModel{Type: "social", Platform: "instagram", Description: "ignored"},
			want:  entity.SocialDetails{Platform: "instagram"},
		},
		{
			name:  "product",
			model: &model.LinkModel{Type: "product", Description: "mug", ImageURL: "https://img", Price: &price},
			want:  entity.ProductDetails{Description: "mug", ImageURL: "https://img", Price: 19.5},
		},
		{
			name:  "product without price",
			model: &model.LinkModel{Type: "product"},
			want:  entity.ProductDetails{},
		},
		{
			name:  "embed",
			model: &model.LinkModel{Type: "embed", EmbedType: "youtube"},
			want:  entity.EmbedDetails{EmbedType: entity.EmbedTypeYouTube},
		},
		{
			name:  "unknown type reads as general",
			model: &model.LinkModel{Type: "carousel", Description: "x"},
			want:  entity.GeneralDetails{Description: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toLinkDomain(tt.model)
			assert.Equal(t, tt.want, got.Details)
		})
	}
}

func TestFromLinkDomain_FlattensVariant(t *testing.T) {
	link := &entity.Link{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Title:    "Shop",
		URL:      "https://shop.example.com",
		Position: 4,
		Details:  entity.ProductDetails{Description: "mug", ImageURL: "https://img", Price: 0},
	}

	linkM := fromLinkDomain(link)

	assert.Equal(t, "product", linkM.Type)
	require.NotNil(t, linkM.Price)
	assert.Zero(t, *linkM.Price)
	assert.Equal(t, "mug", linkM.Description)
	assert.Empty(t, linkM.Platform)
	assert.Equal(t, 4, linkM.Position)
}

func TestFromLinkDomain_NilDetailsIsGeneral(t *testing.T) {
	linkM := fromLinkDomain(&entity.Link{ID: uuid.New(), Title: "Home", URL: "https://example.com"})

	assert.Equal(t, "general", linkM.Type)
	assert.Nil(t, linkM.Price)
}

func TestGroupDailyClicks(t *testing.T) {
	linkA, linkB := uuid.New(), uuid.New()
	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	grouped := groupDailyClicks([]dailyClickRow{
		{LinkID: linkA, Day: day1, Count: 3},
		{LinkID: linkB, Day: day1, Count: 1},
		{LinkID: linkA, Day: day2, Count: 5},
	})

	assert.Equal(t, []entity.DailyClicks{{Date: "2026-03-01", Count: 3}, {Date: "2026-03-02", Count: 5}}, grouped[linkA])
	assert.Equal(t, []entity.DailyClicks{{Date: "2026-03-01", Count: 1}}, grouped[linkB])
}
