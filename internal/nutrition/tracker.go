package nutrition

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/arnold/nutritrack-api/internal/models"
	"github.com/arnold/nutritrack-api/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Clock supplies "now"; injected so tests can cross midnight on demand.
type Clock func() time.Time

// Notifier is the achievement delivery sink. Implementations must not
// block the caller.
type Notifier interface {
	Send(userID uuid.UUID, kind, title, body string)
}

// Per-user storage keys.
const (
	keyProfile     = "profile"
	keyCustomGoals = "custom_nutrients"
	keyCustomFoods = "custom_foods"
	keyTodayFoods  = "today_foods"
	keyHistory     = "history"
)

func waterNotifiedKey(date string) string {
	return "notified_water_" + date
}

// ledgerEnvelope persists the day's selected food ids together with the
// day they belong to, so a session crossing midnight starts fresh.
type ledgerEnvelope struct {
	Date string   `json:"date"`
	IDs  []string `json:"ids"`
}

// Snapshot is the derived view of the current day.
type Snapshot struct {
	Date      string                `json:"date"`
	Plate     []models.FoodItem     `json:"plate"`
	Totals    models.NutrientData   `json:"totals"`
	Goals     []models.NutrientGoal `json:"goals"`
	Water     float64               `json:"water"`
	WaterGoal float64               `json:"waterGoal"`
	Achieved  []string              `json:"achieved"`
	Revision  uint64                `json:"revision"`
}

// Tracker holds one user's nutrition session. Every command takes the
// mutex, resolves the day key fresh, applies the mutation, then runs the
// derivation pipeline (goals → totals → history upsert → achievement
// check) before returning, so reads never observe stale totals.
type Tracker struct {
	mu       sync.Mutex
	store    store.Store
	userID   uuid.UUID
	clock    Clock
	notifier Notifier
	log      zerolog.Logger

	profile     *models.UserProfile
	customGoals []models.NutrientGoal
	customFoods []models.FoodItem
	ledger      []string
	ledgerDate  string
	history     models.HistoryMap

	achieved      map[string]bool
	waterNotified bool
	revision      uint64
}

// NewTracker loads the user's persisted state. Malformed stored values are
// logged and replaced with the zero state rather than failing the session.
func NewTracker(st store.Store, userID uuid.UUID, clock Clock, notifier Notifier, log zerolog.Logger) (*Tracker, error) {
	t := &Tracker{
		store:    st,
		userID:   userID,
		clock:    clock,
		notifier: notifier,
		log:      log.With().Str("user", userID.String()).Logger(),
		history:  models.HistoryMap{},
		achieved: make(map[string]bool),
	}

	var profile models.UserProfile
	if t.loadJSON(keyProfile, &profile) {
		t.profile = &profile
	}
	t.loadJSON(keyCustomGoals, &t.customGoals)
	t.loadJSON(keyCustomFoods, &t.customFoods)
	t.loadJSON(keyHistory, &t.history)
	if t.history == nil {
		t.history = models.HistoryMap{}
	}

	var envelope ledgerEnvelope
	if t.loadJSON(keyTodayFoods, &envelope) {
		t.ledger = envelope.IDs
		t.ledgerDate = envelope.Date
	}

	today, err := t.roll()
	if err != nil {
		return nil, err
	}
	// Same-day reload: roll early-returns without consulting the flag.
	if !t.waterNotified {
		_, found, err := st.Get(userID, waterNotifiedKey(today))
		if err != nil {
			return nil, fmt.Errorf("load water flag: %w", err)
		}
		t.waterNotified = found
	}
	if err := t.derive(today); err != nil {
		return nil, err
	}
	return t, nil
}

// roll resolves today's key and, when the day has changed since the ledger
// was written, starts the new day: empty ledger, cleared achievement set,
// water flag re-read for the new key. Past records stay as last written.
func (t *Tracker) roll() (string, error) {
	today := t.clock().Format("2006-01-02")
	if t.ledgerDate == today {
		return today, nil
	}

	stale := t.ledgerDate != ""
	t.ledgerDate = today
	t.ledger = nil
	t.achieved = make(map[string]bool)

	_, found, err := t.store.Get(t.userID, waterNotifiedKey(today))
	if err != nil {
		return "", fmt.Errorf("load water flag: %w", err)
	}
	t.waterNotified = found

	if stale {
		if err := t.saveLedger(); err != nil {
			return "", err
		}
	}
	return today, nil
}

// derive recomputes goals and totals and persists the day's record when it
// actually changed. The equality guard keeps the reactive recomputation
// from looping or re-writing identical state.
func (t *Tracker) derive(today string) error {
	goals := t.deriveGoals()
	totals := SumTotals(t.ledger, t.workingFoods())

	if UpsertTotals(t.history, today, totals) {
		if err := t.saveJSON(keyHistory, t.history); err != nil {
			return err
		}
	}

	t.checkAchievements(today, goals, totals)
	t.revision++
	return nil
}

// checkAchievements reports each goal at most once per day, however often
// the totals cross the target. The water goal has its own day-scoped
// persisted flag since water is not part of the nutrient catalog.
func (t *Tracker) checkAchievements(today string, goals []models.NutrientGoal, totals models.NutrientData) {
	for _, goal := range goals {
		if goal.Goal <= 0 || t.achieved[goal.Key] {
			continue
		}
		if totals[goal.Key] >= goal.Goal {
			t.achieved[goal.Key] = true
			t.notify("goal_achieved", "Goal Achieved! 🎉", fmt.Sprintf("Reached your daily %s target.", goal.Label))
		}
	}

	if !t.waterNotified && t.history[today].Water >= WaterGoal(t.profile) {
		t.waterNotified = true
		if err := t.store.Set(t.userID, waterNotifiedKey(today), []byte("true")); err != nil {
			t.log.Error().Err(err).Msg("failed to persist water achievement flag")
		}
		t.notify("water_achieved", "Hydration Goal Achieved! 💧", "Reached your daily water target.")
	}
}

func (t *Tracker) notify(kind, title, body string) {
	if t.notifier != nil {
		t.notifier.Send(t.userID, kind, title, body)
	}
}

func (t *Tracker) deriveGoals() []models.NutrientGoal {
	return PersonalizeGoals(t.profile, MergeGoals(BuiltinGoals(), t.customGoals))
}

func (t *Tracker) workingFoods() []models.FoodItem {
	return MergeFoods(SeedFoods(), t.customFoods)
}

// Profile returns a copy of the saved profile, or nil.
func (t *Tracker) Profile() *models.UserProfile {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.profile == nil {
		return nil
	}
	profile := *t.profile
	return &profile
}

// SaveProfile validates and stores the body/activity profile and re-derives
// the personalized goals.
func (t *Tracker) SaveProfile(profile models.UserProfile) error {
	if profile.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if profile.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrValidation)
	}
	if !ValidActivityLevel(profile.ActivityLevel) {
		return fmt.Errorf("%w: unknown activity level %q", ErrValidation, profile.ActivityLevel)
	}
	if !ValidDietType(profile.DietType) {
		return fmt.Errorf("%w: unknown diet type %q", ErrValidation, profile.DietType)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	today, err := t.roll()
	if err != nil {
		return err
	}
	if err := t.saveJSON(keyProfile, profile); err != nil {
		return err
	}
	t.profile = &profile
	return t.derive(today)
}

// Goals returns the merged, personalized goal catalog.
func (t *Tracker) Goals() ([]models.NutrientGoal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.roll(); err != nil {
		return nil, err
	}
	return t.deriveGoals(), nil
}

// AddGoal appends a custom nutrient goal. The key is derived from the
// label; a collision with any existing key is rejected with no change.
func (t *Tracker) AddGoal(req models.AddGoalRequest) (models.NutrientGoal, error) {
	if DeriveGoalKey(req.Label) == "" {
		return models.NutrientGoal{}, fmt.Errorf("%w: label is required", ErrValidation)
	}
	if req.Goal <= 0 {
		return models.NutrientGoal{}, fmt.Errorf("%w: goal target must be positive", ErrValidation)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	today, err := t.roll()
	if err != nil {
		return models.NutrientGoal{}, err
	}

	goal := NewCustomGoal(req)
	for _, existing := range t.deriveGoals() {
		if existing.Key == goal.Key {
			return models.NutrientGoal{}, ErrDuplicateGoalKey
		}
	}

	updated := append(append([]models.NutrientGoal(nil), t.customGoals...), goal)
	if err := t.saveJSON(keyCustomGoals, updated); err != nil {
		return models.NutrientGoal{}, err
	}
	t.customGoals = updated
	if err := t.derive(today); err != nil {
		return models.NutrientGoal{}, err
	}
	return goal, nil
}

// DeleteGoal removes a custom goal by key. Builtins are never deletable.
func (t *Tracker) DeleteGoal(key string) error {
	for _, builtin := range builtinGoals {
		if builtin.Key == key {
			return ErrBuiltinGoal
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	today, err := t.roll()
	if err != nil {
		return err
	}

	updated := make([]models.NutrientGoal, 0, len(t.customGoals))
	found := false
	for _, goal := range t.customGoals {
		if goal.Key == key {
			found = true
			continue
		}
		updated = append(updated, goal)
	}
	if !found {
		return ErrGoalNotFound
	}

	if err := t.saveJSON(keyCustomGoals, updated); err != nil {
		return err
	}
	t.customGoals = updated
	return t.derive(today)
}

// Foods returns the working food database (seed ++ custom).
func (t *Tracker) Foods() []models.FoodItem {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.workingFoods()
}

// CreateFood adds a custom food and toggles it straight into today's
// ledger (the manual-add flow).
func (t *Tracker) CreateFood(req models.FoodRequest) (models.FoodItem, error) {
	if err := validateFoodRequest(req); err != nil {
		return models.FoodItem{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	today, err := t.roll()
	if err != nil {
		return models.FoodItem{}, err
	}

	food := models.FoodItem{
		ID:        NewCustomFoodID(),
		Name:      req.Name,
		Diet:      req.Diet,
		Nutrients: cloneNutrients(req.Nutrients),
	}

	updated := append(append([]models.FoodItem(nil), t.customFoods...), food)
	if err := t.saveJSON(keyCustomFoods, updated); err != nil {
		return models.FoodItem{}, err
	}
	t.customFoods = updated

	t.ledger = ToggleFood(t.ledger, food.ID)
	if err := t.saveLedger(); err != nil {
		return models.FoodItem{}, err
	}
	if err := t.derive(today); err != nil {
		return models.FoodItem{}, err
	}
	return food, nil
}

// UpdateFood edits a custom food in place. Seed foods are immutable.
func (t *Tracker) UpdateFood(id string, req models.FoodRequest) (models.FoodItem, error) {
	if !IsCustomFoodID(id) {
		return models.FoodItem{}, ErrSeedFood
	}
	if err := validateFoodRequest(req); err != nil {
		return models.FoodItem{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	today, err := t.roll()
	if err != nil {
		return models.FoodItem{}, err
	}

	updated := append([]models.FoodItem(nil), t.customFoods...)
	index := -1
	for i, food := range updated {
		if food.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return models.FoodItem{}, ErrFoodNotFound
	}

	updated[index].Name = req.Name
	updated[index].Diet = req.Diet
	updated[index].Nutrients = cloneNutrients(req.Nutrients)

	if err := t.saveJSON(keyCustomFoods, updated); err != nil {
		return models.FoodItem{}, err
	}
	t.customFoods = updated
	if err := t.derive(today); err != nil {
		return models.FoodItem{}, err
	}
	return updated[index], nil
}

// DeleteFood removes a custom food. Ledger entries still referencing it are
// left in place and skipped during totals aggregation.
func (t *Tracker) DeleteFood(id string) error {
	if !IsCustomFoodID(id) {
		return ErrSeedFood
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	today, err := t.roll()
	if err != nil {
		return err
	}

	updated := make([]models.FoodItem, 0, len(t.customFoods))
	found := false
	for _, food := range t.customFoods {
		if food.ID == id {
			found = true
			continue
		}
		updated = append(updated, food)
	}
	if !found {
		return ErrFoodNotFound
	}

	if err := t.saveJSON(keyCustomFoods, updated); err != nil {
		return err
	}
	t.customFoods = updated
	return t.derive(today)
}

// Toggle flips a food in or out of today's ledger.
func (t *Tracker) Toggle(id string) (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today, err := t.roll()
	if err != nil {
		return Snapshot{}, err
	}

	if _, ok := LookupFood(t.workingFoods(), id); !ok && !containsID(t.ledger, id) {
		return Snapshot{}, ErrFoodNotFound
	}

	t.ledger = ToggleFood(t.ledger, id)
	if err := t.saveLedger(); err != nil {
		return Snapshot{}, err
	}
	if err := t.derive(today); err != nil {
		return Snapshot{}, err
	}
	return t.snapshot(today), nil
}

// AddWater applies a signed delta to today's water, clamped at zero.
func (t *Tracker) AddWater(delta float64) (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today, err := t.roll()
	if err != nil {
		return Snapshot{}, err
	}

	AddWater(t.history, today, delta)
	if err := t.saveJSON(keyHistory, t.history); err != nil {
		return Snapshot{}, err
	}
	if err := t.derive(today); err != nil {
		return Snapshot{}, err
	}
	return t.snapshot(today), nil
}

// ResetDay clears today's ledger, totals, water, and achievement state.
// Other days are untouched.
func (t *Tracker) ResetDay() (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today, err := t.roll()
	if err != nil {
		return Snapshot{}, err
	}

	t.ledger = nil
	if err := t.saveLedger(); err != nil {
		return Snapshot{}, err
	}
	ResetDay(t.history, today)
	if err := t.saveJSON(keyHistory, t.history); err != nil {
		return Snapshot{}, err
	}

	t.achieved = make(map[string]bool)
	t.waterNotified = false
	if err := t.store.Remove(t.userID, waterNotifiedKey(today)); err != nil {
		t.log.Error().Err(err).Msg("failed to clear water achievement flag")
	}

	if err := t.derive(today); err != nil {
		return Snapshot{}, err
	}
	return t.snapshot(today), nil
}

// ResetAll wipes the user's entire persisted namespace and returns the
// session to the zero state.
func (t *Tracker) ResetAll() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.RemoveAll(t.userID); err != nil {
		return err
	}

	t.profile = nil
	t.customGoals = nil
	t.customFoods = nil
	t.ledger = nil
	t.history = models.HistoryMap{}
	t.achieved = make(map[string]bool)
	t.waterNotified = false
	t.revision++
	return nil
}

// History returns a copy of the full date → record map.
func (t *Tracker) History() models.HistoryMap {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(models.HistoryMap, len(t.history))
	for date, record := range t.history {
		out[date] = record
	}
	return out
}

// Today returns the current day's derived view. Mutations keep the day's
// record current, so this is a pure read.
func (t *Tracker) Today() (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today, err := t.roll()
	if err != nil {
		return Snapshot{}, err
	}
	return t.snapshot(today), nil
}

// Recommend ranks foods for the given nutrient under the user's diet
// preference (vegetarian when no profile is set).
func (t *Tracker) Recommend(nutrientKey string) []models.FoodItem {
	t.mu.Lock()
	defer t.mu.Unlock()

	diet := models.DietType("")
	if t.profile != nil {
		diet = t.profile.DietType
	}
	return Recommend(nutrientKey, diet, t.deriveGoals(), t.workingFoods())
}

func (t *Tracker) snapshot(today string) Snapshot {
	foods := t.workingFoods()
	plate := make([]models.FoodItem, 0, len(t.ledger))
	for _, id := range t.ledger {
		if food, ok := LookupFood(foods, id); ok {
			plate = append(plate, food)
		}
	}

	achieved := make([]string, 0, len(t.achieved))
	for key := range t.achieved {
		achieved = append(achieved, key)
	}
	sort.Strings(achieved)

	record := t.history[today]
	totals := record.Totals
	if totals == nil {
		totals = models.NutrientData{}
	}
	return Snapshot{
		Date:      today,
		Plate:     plate,
		Totals:    totals,
		Goals:     t.deriveGoals(),
		Water:     record.Water,
		WaterGoal: WaterGoal(t.profile),
		Achieved:  achieved,
		Revision:  t.revision,
	}
}

func validateFoodRequest(req models.FoodRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !ValidFoodCategory(req.Diet) {
		return fmt.Errorf("%w: unknown diet category %q", ErrValidation, req.Diet)
	}
	for key, amount := range req.Nutrients {
		if amount < 0 {
			return fmt.Errorf("%w: %s amount cannot be negative", ErrValidation, key)
		}
	}
	return nil
}

func cloneNutrients(nutrients models.NutrientData) models.NutrientData {
	out := models.NutrientData{}
	for key, amount := range nutrients {
		out[key] = amount
	}
	return out
}

func (t *Tracker) saveLedger() error {
	return t.saveJSON(keyTodayFoods, ledgerEnvelope{Date: t.ledgerDate, IDs: t.ledger})
}

func (t *Tracker) saveJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := t.store.Set(t.userID, key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// loadJSON reads and decodes a stored value. Corrupt data falls back to the
// zero state instead of failing the session.
func (t *Tracker) loadJSON(key string, v interface{}) bool {
	data, found, err := t.store.Get(t.userID, key)
	if err != nil {
		t.log.Error().Err(err).Str("key", key).Msg("failed to load stored state")
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.log.Warn().Err(err).Str("key", key).Msg("discarding malformed stored state")
		return false
	}
	return true
}
