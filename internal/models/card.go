package models

import "time"

// Card is a single photo card in the gallery collection.
//
// LikedBy holds the ids of users who liked the card. It has set semantics:
// an id appears at most once. The collection itself is ordered and new cards
// are prepended, so element order is meaningful and must be preserved by
// mutations.
type Card struct {
	ID        string
	OwnerID   string
	Title     string
	ImageURL  string
	LikedBy   []string
	CreatedAt time.Time
}

// LikedByUser reports whether the user with the given id has liked the card.
func (c Card) LikedByUser(userID string) bool {
	for _, id := range c.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
