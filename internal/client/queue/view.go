package queue

import (
	"slices"

	"github.com/dmitrijs2005/teamadmin/internal/server/models"
)

// ServerOrder keeps the list as the server sent it.
func ServerOrder[T Record](items []T, _ models.Date) []T {
	return slices.Clone(items)
}

// UpcomingAds keeps ads dated today or later, earliest first. Ads without a
// date are dropped. Equal dates keep server order.
func UpcomingAds(items []models.Ad, today models.Date) []models.Ad {
	out := make([]models.Ad, 0, len(items))
	for _, a := range items {
		if a.Date.IsZero() || a.Date.Before(today) {
			continue
		}
		out = append(out, a)
	}
	slices.SortStableFunc(out, func(a, b models.Ad) int {
		return a.Date.Compare(b.Date)
	})
	return out
}
