package memory

import (
	"context"

	"gallery-analytics-service/internal/photos/core/domain"
	"gallery-analytics-service/internal/photos/core/ports"
)

var explorationPhotos = []domain.Photo{
	{
		ID:          1,
		Title:       "Machu Picchu Sunrise",
		Location:    "Peru",
		Description: "Ancient Incan citadel at dawn, shrouded in mystical morning mist",
		Image:       "https://images.unsplash.com/photo-1587595431973-160d0d94add1?w=400&h=300&fit=crop",
		Explorer:    "Adventure Seeker",
		Date:        "2024-01-15",
		Elevation:   "2,430m",
	},
	{
		ID:          2,
		Title:       "Northern Lights",
		Location:    "Iceland",
		Description: "Aurora Borealis dancing across the Arctic sky in brilliant green waves",
		Image:       "https://images.unsplash.com/photo-1531366936337-7c912a4589a7?w=400&h=300&fit=crop",
		Explorer:    "Arctic Explorer",
		Date:        "2024-02-20",
		Temperature: "-15°C",
	},
	{
		ID:          3,
		Title:       "Sahara Desert Dunes",
		Location:    "Morocco",
		Description: "Golden sand dunes stretching endlessly toward the horizon at sunset",
		Image:       "https://images.unsplash.com/photo-1509316975850-ff9c5deb0cd9?w=400&h=300&fit=crop",
		Explorer:    "Desert Wanderer",
		Date:        "2024-03-10",
		Temperature: "45°C",
	},
	{
		ID:          4,
		Title:       "Mount Fuji",
		Location:    "Japan",
		Description: "Sacred mountain reflected perfectly in the still waters of Lake Kawaguchi",
		Image:       "https://images.unsplash.com/photo-1490806843957-31f4c9a91c65?w=400&h=300&fit=crop",
		Explorer:    "Mountain Climber",
		Date:        "2024-04-05",
		Elevation:   "3,776m",
	},
	{
		ID:          5,
		Title:       "Amazon Rainforest",
		Location:    "Brazil",
		Description: "Dense canopy of the world's largest tropical rainforest",
		Image:       "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400&h=300&fit=crop",
		Explorer:    "Jungle Guide",
		Date:        "2024-05-12",
		Humidity:    "95%",
	},
	{
		ID:          6,
		Title:       "Norwegian Fjords",
		Location:    "Norway",
		Description: "Dramatic cliffs and pristine waters of Geirangerfjord",
		Image:       "https://images.unsplash.com/photo-1469474968028-56623f02e42e?w=400&h=300&fit=crop",
		Explorer:    "Nordic Adventurer",
		Date:        "2024-06-18",
		Depth:       "260m",
	},
}

// Catalog serves the fixed exploration photo set. It is read-only and safe for concurrent use.
type Catalog struct {
	photos []domain.Photo
}

func NewCatalog() *Catalog {
	return &Catalog{photos: explorationPhotos}
}

var _ ports.PhotoCatalogPort = (*Catalog)(nil)

func (c *Catalog) List(ctx context.Context) ([]domain.Photo, error) {
	out := make([]domain.Photo, len(c.photos))
	copy(out, c.photos)
	return out, nil
}

func (c *Catalog) FindByID(ctx context.Context, id int) (domain.Photo, bool, error) {
	for _, p := range c.photos {
		if p.ID == id {
			return p, true, nil
		}
	}
	return domain.Photo{}, false, nil
}
