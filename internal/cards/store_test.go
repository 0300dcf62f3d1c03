package cards

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/mesto-client/internal/models"
)

// ---- fake gallery client ----

type fakeGallery struct {
	UserRet models.User
	UserErr error

	CardsRet []models.Card
	CardsErr error

	SaveInfoRet models.User
	SaveInfoErr error

	SaveAvatarRet models.User
	SaveAvatarErr error

	AddRet models.Card
	AddErr error

	LikeRet models.Card
	LikeErr error
	// LikeFn, if set, overrides LikeRet/LikeErr. Used to orchestrate
	// overlapping toggles.
	LikeFn func(cardID string, liked bool) (models.Card, error)

	DeleteErr error

	LastLikeCardID  string
	LastLikeDesired bool
	LastDeleteID    string
	LastAddTitle    string
	LastAddURL      string
}

func (f *fakeGallery) GetUserInfo(ctx context.Context) (models.User, error) {
	return f.UserRet, f.UserErr
}

func (f *fakeGallery) GetInitialCards(ctx context.Context) ([]models.Card, error) {
	return append([]models.Card(nil), f.CardsRet...), f.CardsErr
}

func (f *fakeGallery) SaveUserInfo(ctx context.Context, name, about string) (models.User, error) {
	return f.SaveInfoRet, f.SaveInfoErr
}

func (f *fakeGallery) SaveUserAvatar(ctx context.Context, avatarURL string) (models.User, error) {
	return f.SaveAvatarRet, f.SaveAvatarErr
}

func (f *fakeGallery) AddNewCard(ctx context.Context, title, imageURL string) (models.Card, error) {
	f.LastAddTitle = title
	f.LastAddURL = imageURL
	return f.AddRet, f.AddErr
}

func (f *fakeGallery) ChangeLikeCardStatus(ctx context.Context, cardID string, liked bool) (models.Card, error) {
	f.LastLikeCardID = cardID
	f.LastLikeDesired = liked
	if f.LikeFn != nil {
		return f.LikeFn(cardID, liked)
	}
	return f.LikeRet, f.LikeErr
}

func (f *fakeGallery) DeleteCard(ctx context.Context, cardID string) error {
	f.LastDeleteID = cardID
	return f.DeleteErr
}

// ---- helpers ----

func card(id string, likedBy ...string) models.Card {
	return models.Card{
		ID:        id,
		OwnerID:   "owner-1",
		Title:     "title-" + id,
		ImageURL:  "https://pictures.example/" + id + ".jpg",
		LikedBy:   likedBy,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func loadedStore(t *testing.T, fc *fakeGallery) *Store {
	t.Helper()
	s := NewStore(fc)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func cardIDs(cards []models.Card) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}

// ---- TESTS ----

func TestLoad_SetsUserAndCards(t *testing.T) {
	fc := &fakeGallery{
		UserRet:  models.User{ID: "u1", Name: "Jacques", About: "explorer"},
		CardsRet: []models.Card{card("c1"), card("c2")},
	}
	s := loadedStore(t, fc)

	assert.Equal(t, "u1", s.User().ID)
	assert.Equal(t, []string{"c1", "c2"}, cardIDs(s.Cards()))
}

func TestLoad_Failure_LeavesPriorStateUntouched(t *testing.T) {
	fc := &fakeGallery{
		UserRet:  models.User{ID: "u1"},
		CardsRet: []models.Card{card("c1")},
	}
	s := loadedStore(t, fc)

	fc.CardsErr = errors.New("network down")
	err := s.Load(context.Background())
	require.Error(t, err)

	assert.Equal(t, "u1", s.User().ID)
	assert.Equal(t, []string{"c1"}, cardIDs(s.Cards()))
}

func TestToggleLike_IssuesOppositeOfCurrentState(t *testing.T) {
	fc := &fakeGallery{
		UserRet:  models.User{ID: "u1"},
		CardsRet: []models.Card{card("c1"), card("c2", "u1")},
		LikeRet:  card("c1", "u1"),
	}
	s := loadedStore(t, fc)

	_, err := s.ToggleLike(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", fc.LastLikeCardID)
	assert.True(t, fc.LastLikeDesired, "not yet liked, must request like")

	fc.LikeRet = card("c2")
	_, err = s.ToggleLike(context.Background(), "c2")
	require.NoError(t, err)
	assert.False(t, fc.LastLikeDesired, "already liked, must request unlike")
}

func TestToggleLike_AppliesServerConfirmedCardExactly(t *testing.T) {
	// локальное состояние должно отражать ответ сервера, а не локальную догадку
	confirmed := card("c1", "u1", "u2", "u3")
	fc := &fakeGallery{
		UserRet:  models.User{ID: "u1"},
		CardsRet: []models.Card{card("c1")},
		LikeRet:  confirmed,
	}
	s := loadedStore(t, fc)

	got, err := s.ToggleLike(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, confirmed, got)
	assert.Equal(t, confirmed, s.Cards()[0])
}

func TestToggleLike_Failure_LeavesCollectionUnchanged(t *testing.T) {
	fc := &fakeGallery{
		UserRet:  models.User{ID: "u1"},
		CardsRet: []models.Card{card("c1")},
		LikeErr:  errors.New("network down"),
	}
	s := loadedStore(t, fc)
	before := s.Cards()

	_, err := s.ToggleLike(context.Background(), "c1")
	require.Error(t, err)
	assert.Equal(t, before, s.Cards())
}

func TestToggleLike_UnknownCard(t *testing.T) {
	fc := &fakeGallery{UserRet: models.User{ID: "u1"}, CardsRet: []models.Card{card("c1")}}
	s := loadedStore(t, fc)

	_, err := s.ToggleLike(context.Background(), "missing")
	require.ErrorIs(t, err, ErrCardNotFound)
}

func TestToggleLike_StaleResponseDropped(t *testing.T) {
	// Два пересекающихся тоггла: первый ответ приходит последним и должен
	// быть отброшен.
	stale := card("c1", "u1")
	stale.Title = "stale"
	fresh := card("c1")
	fresh.Title = "fresh"

	var calls int32
	started := make(chan struct{})
	unblock := make(chan struct{})

	fc := &fakeGallery{
		UserRet:  models.User{ID: "u1"},
		CardsRet: []models.Card{card("c1")},
	}
	fc.LikeFn = func(cardID string, liked bool) (models.Card, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-unblock
			return stale, nil
		}
		return fresh, nil
	}
	s := loadedStore(t, fc)

	firstDone := make(chan error, 1)
	go func() {
		_, err := s.ToggleLike(context.Background(), "c1")
		firstDone <- err
	}()

	<-started
	_, err := s.ToggleLike(context.Background(), "c1")
	require.NoError(t, err)

	close(unblock)
	require.ErrorIs(t, <-firstDone, ErrStaleResponse)

	assert.Equal(t, "fresh", s.Cards()[0].Title, "collection must keep the newer response")
}

func TestAdd_PrependsServerConfirmedCard(t *testing.T) {
	fc := &fakeGallery{
		UserRet:  models.User{ID: "u1"},
		CardsRet: []models.Card{card("c1"), card("c2")},
		AddRet:   card("c3"),
	}
	s := loadedStore(t, fc)

	got, err := s.Add(context.Background(), "Байкал", "https://pictures.example/c3.jpg")
	require.NoError(t, err)

	assert.Equal(t, "c3", got.ID)
	assert.Equal(t, "Байкал", fc.LastAddTitle)
	assert.Equal(t, []string{"c3", "c1", "c2"}, cardIDs(s.Cards()),
		"new card must be first, prior order preserved")
}

func TestAdd_Failure_LeavesCollectionUnchanged(t *testing.T) {
	fc := &fakeGallery{
		CardsRet: []models.Card{card("c1")},
		AddErr:   errors.New("bad payload"),
	}
	s := loadedStore(t, fc)

	_, err := s.Add(context.Background(), "", "")
	require.Error(t, err)
	assert.Equal(t, []string{"c1"}, cardIDs(s.Cards()))
}

func TestDelete_RemovesExactlyTheMatchedCard(t *testing.T) {
	// Регрессионный тест: в прошлом фильтр удаления был инвертирован и
	// сравнивал элементы с ответом сервера. Удаление должно убирать ровно
	// одну карточку по id и сохранять порядок остальных.
	fc := &fakeGallery{
		CardsRet: []models.Card{card("c1"), card("c2"), card("c3"), card("c4")},
	}
	s := loadedStore(t, fc)

	require.NoError(t, s.Delete(context.Background(), "c2"))

	assert.Equal(t, "c2", fc.LastDeleteID)
	assert.Equal(t, []string{"c1", "c3", "c4"}, cardIDs(s.Cards()))
}

func TestDelete_Exactness_BulkCollection(t *testing.T) {
	faker := gofakeit.New(11)

	const n = 50
	collection := make([]models.Card, 0, n)
	for i := 0; i < n; i++ {
		collection = append(collection, models.Card{
			ID:       fmt.Sprintf("c%03d", i),
			Title:    faker.City(),
			ImageURL: faker.URL(),
		})
	}

	fc := &fakeGallery{CardsRet: collection}
	s := loadedStore(t, fc)

	victim := collection[17].ID
	require.NoError(t, s.Delete(context.Background(), victim))

	got := s.Cards()
	require.Len(t, got, n-1)

	want := make([]string, 0, n-1)
	for _, c := range collection {
		if c.ID != victim {
			want = append(want, c.ID)
		}
	}
	assert.Equal(t, want, cardIDs(got), "every other id and its order preserved")
}

func TestDelete_Failure_LeavesCollectionUnchanged(t *testing.T) {
	fc := &fakeGallery{
		CardsRet:  []models.Card{card("c1"), card("c2")},
		DeleteErr: errors.New("forbidden"),
	}
	s := loadedStore(t, fc)

	err := s.Delete(context.Background(), "c1")
	require.Error(t, err)
	assert.Equal(t, []string{"c1", "c2"}, cardIDs(s.Cards()))
}

func TestUpdateProfile_ReplacesUserWholesale(t *testing.T) {
	fc := &fakeGallery{
		UserRet:     models.User{ID: "u1", Name: "old", About: "old", AvatarURL: "old.jpg"},
		SaveInfoRet: models.User{ID: "u1", Name: "Marie", About: "scientist", AvatarURL: "old.jpg"},
	}
	s := loadedStore(t, fc)

	got, err := s.UpdateProfile(context.Background(), "Marie", "scientist")
	require.NoError(t, err)
	assert.Equal(t, fc.SaveInfoRet, got)
	assert.Equal(t, fc.SaveInfoRet, s.User())
}

func TestUpdateAvatar_ReplacesUserWholesale(t *testing.T) {
	fc := &fakeGallery{
		UserRet:       models.User{ID: "u1", AvatarURL: "old.jpg"},
		SaveAvatarRet: models.User{ID: "u1", AvatarURL: "new.jpg"},
	}
	s := loadedStore(t, fc)

	got, err := s.UpdateAvatar(context.Background(), "new.jpg")
	require.NoError(t, err)
	assert.Equal(t, "new.jpg", got.AvatarURL)
	assert.Equal(t, fc.SaveAvatarRet, s.User())
}

func TestUpdateProfile_Failure_KeepsOldUser(t *testing.T) {
	fc := &fakeGallery{
		UserRet:     models.User{ID: "u1", Name: "old"},
		SaveInfoErr: errors.New("network down"),
	}
	s := loadedStore(t, fc)

	_, err := s.UpdateProfile(context.Background(), "Marie", "scientist")
	require.Error(t, err)
	assert.Equal(t, "old", s.User().Name)
}

func TestReset_DiscardsState(t *testing.T) {
	fc := &fakeGallery{
		UserRet:  models.User{ID: "u1"},
		CardsRet: []models.Card{card("c1")},
	}
	s := loadedStore(t, fc)

	s.Reset()
	assert.Empty(t, s.User().ID)
	assert.Empty(t, s.Cards())
}
