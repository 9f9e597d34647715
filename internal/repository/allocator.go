package repository

import "newvision/internal/models"

// ID and display_order allocation for the file backend. Both scan the full
// collection; callers must hold the store lock so allocation and the write
// that commits it are serialized. The Postgres backend uses the column
// sequence for ids and a MAX query inside the insert transaction instead.

func nextID(news []models.News) uint {
	var max uint
	for _, n := range news {
		if n.ID > max {
			max = n.ID
		}
	}
	return max + 1
}

func nextDisplayOrder(news []models.News) int {
	if len(news) == 0 {
		return 0
	}
	max := 0
	for _, n := range news {
		if n.DisplayOrder > max {
			max = n.DisplayOrder
		}
	}
	return max + 1
}
