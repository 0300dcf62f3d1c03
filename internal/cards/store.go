// Package cards owns the in-memory card collection and the current user
// profile, and reconciles them against the remote source of truth. Mutations
// apply the server-confirmed entity, never a local guess.
package cards

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/mesto-client/internal/api"
	"github.com/dmitrijs2005/mesto-client/internal/models"
)

var (
	// ErrCardNotFound means the card id is absent from the local collection.
	ErrCardNotFound = errors.New("card not found")
	// ErrStaleResponse means a like response arrived after a newer toggle
	// for the same card had already been issued; the response was dropped.
	ErrStaleResponse = errors.New("stale like response")
)

// Store is the card collection plus the current user. The collection is
// ordered: new cards are prepended and deletions preserve the order of the
// remaining cards.
type Store struct {
	gallery api.GalleryClient

	mu      sync.Mutex
	user    models.User
	cards   []models.Card
	likeSeq map[string]uint64
}

func NewStore(gallery api.GalleryClient) *Store {
	return &Store{gallery: gallery, likeSeq: make(map[string]uint64)}
}

// Load fetches the user profile and the initial card collection. It is called
// once per authenticated session start. On failure prior state is untouched.
func (s *Store) Load(ctx context.Context) error {
	user, err := s.gallery.GetUserInfo(ctx)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}
	cards, err := s.gallery.GetInitialCards(ctx)
	if err != nil {
		return fmt.Errorf("loading cards: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.cards = cards
	return nil
}

// User returns the current profile snapshot.
func (s *Store) User() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Cards returns a copy of the collection in display order.
func (s *Store) Cards() []models.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Card returns the card with the given id.
func (s *Store) Card(cardID string) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cards {
		if c.ID == cardID {
			return c, nil
		}
	}
	return models.Card{}, ErrCardNotFound
}

// Reset discards the profile and the collection, e.g. on logout.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = models.User{}
	s.cards = nil
	s.likeSeq = make(map[string]uint64)
}

// ToggleLike flips the acting user's like on a card. The desired state is the
// opposite of the current LikedBy membership; on success the card is replaced
// with the server-confirmed one.
//
// Toggles on the same card are not serialized. Each issue bumps a per-card
// sequence number and a response is applied only if no newer toggle was
// issued meanwhile; otherwise it is dropped with ErrStaleResponse.
func (s *Store) ToggleLike(ctx context.Context, cardID string) (models.Card, error) {
	s.mu.Lock()
	var desired bool
	found := false
	for _, c := range s.cards {
		if c.ID == cardID {
			desired = !c.LikedByUser(s.user.ID)
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return models.Card{}, ErrCardNotFound
	}
	s.likeSeq[cardID]++
	seq := s.likeSeq[cardID]
	s.mu.Unlock()

	confirmed, err := s.gallery.ChangeLikeCardStatus(ctx, cardID, desired)
	if err != nil {
		return models.Card{}, fmt.Errorf("toggling like: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.likeSeq[cardID] != seq {
		return models.Card{}, ErrStaleResponse
	}
	for i, c := range s.cards {
		if c.ID == cardID {
			s.cards[i] = confirmed
			break
		}
	}
	return confirmed, nil
}

// Add creates a new card and prepends the server-confirmed one to the
// collection.
func (s *Store) Add(ctx context.Context, title, imageURL string) (models.Card, error) {
	confirmed, err := s.gallery.AddNewCard(ctx, title, imageURL)
	if err != nil {
		return models.Card{}, fmt.Errorf("adding card: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = append([]models.Card{confirmed}, s.cards...)
	return confirmed, nil
}

// Delete removes exactly the card with the given id, keeping the order of
// the remaining cards intact.
func (s *Store) Delete(ctx context.Context, cardID string) error {
	if err := s.gallery.DeleteCard(ctx, cardID); err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cards[:0]
	for _, c := range s.cards {
		if c.ID != cardID {
			kept = append(kept, c)
		}
	}
	s.cards = kept
	return nil
}

// UpdateProfile saves name and about, replacing the profile with the
// server-confirmed snapshot.
func (s *Store) UpdateProfile(ctx context.Context, name, about string) (models.User, error) {
	confirmed, err := s.gallery.SaveUserInfo(ctx, name, about)
	if err != nil {
		return models.User{}, fmt.Errorf("updating profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = confirmed
	return confirmed, nil
}

// UpdateAvatar saves a new avatar URL, replacing the profile wholesale.
func (s *Store) UpdateAvatar(ctx context.Context, avatarURL string) (models.User, error) {
	confirmed, err := s.gallery.SaveUserAvatar(ctx, avatarURL)
	if err != nil {
		return models.User{}, fmt.Errorf("updating avatar: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = confirmed
	return confirmed, nil
}
