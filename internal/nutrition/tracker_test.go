package nutrition

import (
	"sync"
	"testing"
	"time"

	"github.com/arnold/nutritrack-api/internal/models"
	"github.com/arnold/nutritrack-api/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentNote struct {
	kind  string
	title string
	body  string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentNote
}

func (n *fakeNotifier) Send(_ uuid.UUID, kind, title, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNote{kind: kind, title: title, body: body})
}

func (n *fakeNotifier) count(kind string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	total := 0
	for _, note := range n.sent {
		if note.kind == kind {
			total++
		}
	}
	return total
}

func (n *fakeNotifier) bodyCount(body string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	total := 0
	for _, note := range n.sent {
		if note.body == body {
			total++
		}
	}
	return total
}

// countingStore tallies Set calls per key so tests can assert a mutation
// did not rewrite unchanged state.
type countingStore struct {
	store.Store
	mu   sync.Mutex
	sets map[string]int
}

func newCountingStore(inner store.Store) *countingStore {
	return &countingStore{Store: inner, sets: make(map[string]int)}
}

func (s *countingStore) Set(userID uuid.UUID, key string, value []byte) error {
	s.mu.Lock()
	s.sets[key]++
	s.mu.Unlock()
	return s.Store.Set(userID, key, value)
}

func (s *countingStore) setCount(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets[key]
}

func testClock(start time.Time) (Clock, func(time.Duration)) {
	var mu sync.Mutex
	now := start
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		now = now.Add(d)
		mu.Unlock()
	}
	return clock, advance
}

type trackerFixture struct {
	tracker  *Tracker
	store    store.Store
	notifier *fakeNotifier
	userID   uuid.UUID
	clock    Clock
	advance  func(time.Duration)
}

func newFixture(t *testing.T) *trackerFixture {
	t.Helper()

	st := store.NewMemoryStore()
	notifier := &fakeNotifier{}
	userID := uuid.New()
	clock, advance := testClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	tracker, err := NewTracker(st, userID, clock, notifier, zerolog.Nop())
	require.NoError(t, err)

	return &trackerFixture{
		tracker:  tracker,
		store:    st,
		notifier: notifier,
		userID:   userID,
		clock:    clock,
		advance:  advance,
	}
}

func TestTrackerToggleLifecycle(t *testing.T) {
	f := newFixture(t)

	snap, err := f.tracker.Toggle("p1")
	require.NoError(t, err)
	require.Len(t, snap.Plate, 1)
	assert.Equal(t, "p1", snap.Plate[0].ID)
	assert.Equal(t, float64(10), snap.Totals["protein"])
	assert.Equal(t, "2025-06-01", snap.Date)

	snap, err = f.tracker.Toggle("p1")
	require.NoError(t, err)
	assert.Empty(t, snap.Plate)
	assert.Empty(t, snap.Totals)
}

func TestTrackerToggleUnknownFood(t *testing.T) {
	f := newFixture(t)

	_, err := f.tracker.Toggle("nope")
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestTrackerRevisionAdvancesOnMutationOnly(t *testing.T) {
	f := newFixture(t)

	before, err := f.tracker.Today()
	require.NoError(t, err)
	again, err := f.tracker.Today()
	require.NoError(t, err)
	assert.Equal(t, before.Revision, again.Revision)

	after, err := f.tracker.Toggle("p1")
	require.NoError(t, err)
	assert.Greater(t, after.Revision, before.Revision)
}

func TestTrackerAchievementFiresOncePerDay(t *testing.T) {
	f := newFixture(t)

	// default protein goal is 60
	_, err := f.tracker.Toggle("p4") // 31
	require.NoError(t, err)
	_, err = f.tracker.Toggle("p3") // +13
	require.NoError(t, err)
	snap, err := f.tracker.Toggle("b4") // +25 crosses the line
	require.NoError(t, err)

	assert.Contains(t, snap.Achieved, "protein")
	assert.Equal(t, 1, f.notifier.bodyCount("Reached your daily Protein target."))

	// staying above the goal after another mutation must not re-fire
	_, err = f.tracker.Toggle("i2")
	require.NoError(t, err)
	assert.Equal(t, 1, f.notifier.bodyCount("Reached your daily Protein target."))
}

func TestTrackerAchievementResetsAtMidnight(t *testing.T) {
	f := newFixture(t)

	_, err := f.tracker.Toggle("p4")
	require.NoError(t, err)
	_, err = f.tracker.Toggle("p3")
	require.NoError(t, err)
	_, err = f.tracker.Toggle("b4")
	require.NoError(t, err)
	require.Equal(t, 1, f.notifier.bodyCount("Reached your daily Protein target."))

	f.advance(24 * time.Hour)

	snap, err := f.tracker.Today()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", snap.Date)
	assert.Empty(t, snap.Plate)
	assert.Empty(t, snap.Achieved)

	// the new day earns its own notification
	_, err = f.tracker.Toggle("p4")
	require.NoError(t, err)
	_, err = f.tracker.Toggle("p3")
	require.NoError(t, err)
	_, err = f.tracker.Toggle("b4")
	require.NoError(t, err)
	assert.Equal(t, 2, f.notifier.bodyCount("Reached your daily Protein target."))
}

func TestTrackerWaterAchievement(t *testing.T) {
	f := newFixture(t)

	// no profile, so the water goal is the 2500ml default
	snap, err := f.tracker.AddWater(2500)
	require.NoError(t, err)
	assert.Equal(t, float64(2500), snap.Water)
	assert.Equal(t, 1, f.notifier.count("water_achieved"))

	_, err = f.tracker.AddWater(250)
	require.NoError(t, err)
	assert.Equal(t, 1, f.notifier.count("water_achieved"))
}

func TestTrackerWaterFlagSurvivesReload(t *testing.T) {
	f := newFixture(t)

	_, err := f.tracker.AddWater(2500)
	require.NoError(t, err)
	require.Equal(t, 1, f.notifier.count("water_achieved"))

	// a fresh session over the same store must remember the flag
	reloaded, err := NewTracker(f.store, f.userID, f.clock, f.notifier, zerolog.Nop())
	require.NoError(t, err)

	_, err = reloaded.AddWater(10)
	require.NoError(t, err)
	assert.Equal(t, 1, f.notifier.count("water_achieved"))
}

func TestTrackerWaterReachievableNextDay(t *testing.T) {
	f := newFixture(t)

	_, err := f.tracker.AddWater(2500)
	require.NoError(t, err)

	f.advance(24 * time.Hour)

	snap, err := f.tracker.AddWater(2500)
	require.NoError(t, err)
	assert.Equal(t, float64(2500), snap.Water)
	assert.Equal(t, 2, f.notifier.count("water_achieved"))
}

func TestTrackerSaveProfilePersonalizesGoals(t *testing.T) {
	f := newFixture(t)

	err := f.tracker.SaveProfile(models.UserProfile{
		Name:          "Asha",
		Weight:        70,
		ActivityLevel: models.ActivityModerate,
		DietType:      models.DietVegetarian,
	})
	require.NoError(t, err)

	goals, err := f.tracker.Goals()
	require.NoError(t, err)
	byKey := map[string]float64{}
	for _, goal := range goals {
		byKey[goal.Key] = goal.Goal
	}
	assert.Equal(t, float64(2310), byKey["calories"])
	assert.Equal(t, float64(112), byKey["protein"])

	snap, err := f.tracker.Today()
	require.NoError(t, err)
	assert.Equal(t, float64(2450), snap.WaterGoal)
}

func TestTrackerSaveProfileValidation(t *testing.T) {
	f := newFixture(t)

	err := f.tracker.SaveProfile(models.UserProfile{Name: "Asha", Weight: 70, ActivityLevel: "extreme", DietType: models.DietVegan})
	assert.ErrorIs(t, err, ErrValidation)

	err = f.tracker.SaveProfile(models.UserProfile{Name: "", Weight: 70, ActivityLevel: models.ActivityLow, DietType: models.DietVegan})
	assert.ErrorIs(t, err, ErrValidation)

	err = f.tracker.SaveProfile(models.UserProfile{Name: "Asha", Weight: -1, ActivityLevel: models.ActivityLow, DietType: models.DietVegan})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Nil(t, f.tracker.Profile())
}

func TestTrackerCustomGoals(t *testing.T) {
	f := newFixture(t)

	goal, err := f.tracker.AddGoal(models.AddGoalRequest{Label: "Vitamin C", Goal: 90})
	require.NoError(t, err)
	assert.Equal(t, "vitamin-c", goal.Key)

	_, err = f.tracker.AddGoal(models.AddGoalRequest{Label: "vitamin C", Goal: 50})
	assert.ErrorIs(t, err, ErrDuplicateGoalKey)

	// collides with a builtin key
	_, err = f.tracker.AddGoal(models.AddGoalRequest{Label: "Protein", Goal: 10})
	assert.ErrorIs(t, err, ErrDuplicateGoalKey)

	require.NoError(t, f.tracker.DeleteGoal("vitamin-c"))
	assert.ErrorIs(t, f.tracker.DeleteGoal("vitamin-c"), ErrGoalNotFound)
	assert.ErrorIs(t, f.tracker.DeleteGoal("protein"), ErrBuiltinGoal)
}

func TestTrackerCustomFoodLifecycle(t *testing.T) {
	f := newFixture(t)

	food, err := f.tracker.CreateFood(models.FoodRequest{
		Name:      "Protein Shake",
		Diet:      models.CategoryVegetarian,
		Nutrients: models.NutrientData{"protein": 24, "calories": 120},
	})
	require.NoError(t, err)
	assert.True(t, IsCustomFoodID(food.ID))

	// creation toggles the food onto today's plate
	snap, err := f.tracker.Today()
	require.NoError(t, err)
	require.Len(t, snap.Plate, 1)
	assert.Equal(t, float64(24), snap.Totals["protein"])

	updated, err := f.tracker.UpdateFood(food.ID, models.FoodRequest{
		Name:      "Protein Shake XL",
		Diet:      models.CategoryVegetarian,
		Nutrients: models.NutrientData{"protein": 48, "calories": 240},
	})
	require.NoError(t, err)
	assert.Equal(t, "Protein Shake XL", updated.Name)

	snap, err = f.tracker.Today()
	require.NoError(t, err)
	assert.Equal(t, float64(48), snap.Totals["protein"])

	// deleting leaves a dangling ledger id that aggregation skips
	require.NoError(t, f.tracker.DeleteFood(food.ID))
	snap, err = f.tracker.Today()
	require.NoError(t, err)
	assert.Empty(t, snap.Plate)
	assert.Empty(t, snap.Totals)
}

func TestTrackerSeedFoodsAreImmutable(t *testing.T) {
	f := newFixture(t)

	_, err := f.tracker.UpdateFood("p1", models.FoodRequest{Name: "Nope", Diet: models.CategoryVegan})
	assert.ErrorIs(t, err, ErrSeedFood)
	assert.ErrorIs(t, f.tracker.DeleteFood("p1"), ErrSeedFood)

	assert.ErrorIs(t, f.tracker.DeleteFood("custom-missing"), ErrFoodNotFound)
}

func TestTrackerCreateFoodValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.tracker.CreateFood(models.FoodRequest{Name: "", Diet: models.CategoryVegan})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.tracker.CreateFood(models.FoodRequest{Name: "Mystery", Diet: "pescatarian"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.tracker.CreateFood(models.FoodRequest{
		Name:      "Antifood",
		Diet:      models.CategoryVegan,
		Nutrients: models.NutrientData{"protein": -5},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTrackerResetDayKeepsOtherDays(t *testing.T) {
	f := newFixture(t)

	_, err := f.tracker.Toggle("p1")
	require.NoError(t, err)
	_, err = f.tracker.AddWater(500)
	require.NoError(t, err)

	f.advance(24 * time.Hour)

	_, err = f.tracker.Toggle("i2")
	require.NoError(t, err)
	_, err = f.tracker.AddWater(900)
	require.NoError(t, err)

	snap, err := f.tracker.ResetDay()
	require.NoError(t, err)
	assert.Empty(t, snap.Plate)
	assert.Empty(t, snap.Totals)
	assert.Equal(t, float64(0), snap.Water)
	assert.Empty(t, snap.Achieved)

	history := f.tracker.History()
	require.Contains(t, history, "2025-06-01")
	assert.Equal(t, float64(10), history["2025-06-01"].Totals["protein"])
	assert.Equal(t, float64(500), history["2025-06-01"].Water)
}

func TestTrackerResetAll(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.tracker.SaveProfile(models.UserProfile{
		Name: "Asha", Weight: 70, ActivityLevel: models.ActivityLow, DietType: models.DietVegan,
	}))
	_, err := f.tracker.Toggle("p1")
	require.NoError(t, err)
	_, err = f.tracker.AddWater(2500)
	require.NoError(t, err)

	require.NoError(t, f.tracker.ResetAll())

	assert.Nil(t, f.tracker.Profile())
	assert.Empty(t, f.tracker.History())

	// nothing left in the store either
	reloaded, err := NewTracker(f.store, f.userID, f.clock, f.notifier, zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, reloaded.Profile())
}

func TestTrackerStateSurvivesReload(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.tracker.SaveProfile(models.UserProfile{
		Name: "Asha", Weight: 70, ActivityLevel: models.ActivityModerate, DietType: models.DietVegetarian,
	}))
	_, err := f.tracker.Toggle("p1")
	require.NoError(t, err)
	_, err = f.tracker.Toggle("i2")
	require.NoError(t, err)
	_, err = f.tracker.AddWater(750)
	require.NoError(t, err)

	reloaded, err := NewTracker(f.store, f.userID, f.clock, f.notifier, zerolog.Nop())
	require.NoError(t, err)

	snap, err := reloaded.Today()
	require.NoError(t, err)
	assert.Len(t, snap.Plate, 2)
	assert.Equal(t, float64(28), snap.Totals["protein"]) // tofu 10 + lentils 18
	assert.Equal(t, float64(750), snap.Water)

	profile := reloaded.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, "Asha", profile.Name)
}

func TestTrackerToleratesCorruptState(t *testing.T) {
	st := store.NewMemoryStore()
	userID := uuid.New()
	clock, _ := testClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	require.NoError(t, st.Set(userID, "history", []byte("{not json")))
	require.NoError(t, st.Set(userID, "custom_foods", []byte("42")))

	tracker, err := NewTracker(st, userID, clock, &fakeNotifier{}, zerolog.Nop())
	require.NoError(t, err)

	snap, err := tracker.Today()
	require.NoError(t, err)
	assert.Empty(t, snap.Plate)
}

func TestTrackerSkipsHistoryRewriteWhenUnchanged(t *testing.T) {
	counting := newCountingStore(store.NewMemoryStore())
	userID := uuid.New()
	clock, _ := testClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	tracker, err := NewTracker(counting, userID, clock, &fakeNotifier{}, zerolog.Nop())
	require.NoError(t, err)

	_, err = tracker.Toggle("p1")
	require.NoError(t, err)
	base := counting.setCount("history")

	// profile changes goals but not totals, so history stays untouched
	require.NoError(t, tracker.SaveProfile(models.UserProfile{
		Name: "Asha", Weight: 70, ActivityLevel: models.ActivityModerate, DietType: models.DietVegetarian,
	}))
	assert.Equal(t, base, counting.setCount("history"))

	_, err = tracker.Today()
	require.NoError(t, err)
	assert.Equal(t, base, counting.setCount("history"))
}

func TestTrackerRecommendUsesProfileDiet(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.tracker.SaveProfile(models.UserProfile{
		Name: "Asha", Weight: 70, ActivityLevel: models.ActivityLow, DietType: models.DietVegan,
	}))

	for _, food := range f.tracker.Recommend("protein") {
		assert.Equal(t, models.CategoryVegan, food.Diet)
	}
}
