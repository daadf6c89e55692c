// Package state tracks per-user conversation flow and transient data
// between updates. Values are stored as JSON strings so the in-memory
// and Redis managers behave identically.
package state

import "sync"

// User flow states.
const (
	None = "none"

	// Onboarding steps.
	OnboardingAge      = "onboarding_age"
	OnboardingGender   = "onboarding_gender"
	OnboardingHeight   = "onboarding_height"
	OnboardingWeight   = "onboarding_weight"
	OnboardingTarget   = "onboarding_target"
	OnboardingActivity = "onboarding_activity"
	OnboardingGoal     = "onboarding_goal"
	OnboardingRate     = "onboarding_rate"

	WaitingForPhoto       = "waiting_for_photo"
	ReviewingPhoto        = "reviewing_photo"
	WaitingForSearch      = "waiting_for_search"
	WaitingForPortion     = "waiting_for_portion"
	WaitingForManualEntry = "waiting_for_manual_entry"
	WaitingForWeight      = "waiting_for_weight"
	WaitingForCalories    = "waiting_for_calories"
	EditingMacros         = "editing_macros"
)

// Temp data keys.
const (
	KeyOnboarding  = "onboarding"
	KeyReview      = "review"
	KeyFoodID      = "food_id"
	KeyDate        = "date"
	KeyMacroSplit  = "macro_split"
	KeyPendingGoal = "pending_goal"
)

// Manager stores user flow state and temporary values.
type Manager interface {
	SetUserState(userID int64, state string)
	GetUserState(userID int64) string
	ClearUserState(userID int64)
	SetTempData(userID int64, key, value string)
	GetTempData(userID int64, key string) (string, bool)
	ClearTempData(userID int64)
}

// MemoryManager keeps state in process memory. Suitable for a single
// instance; state is lost on restart.
type MemoryManager struct {
	userStates map[int64]string
	tempData   map[int64]map[string]string
	mu         sync.RWMutex
}

func NewMemoryManager() *MemoryManager {
	return &MemoryManager{
		userStates: make(map[int64]string),
		tempData:   make(map[int64]map[string]string),
	}
}

func (m *MemoryManager) SetUserState(userID int64, state string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userStates[userID] = state
}

func (m *MemoryManager) GetUserState(userID int64) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, exists := m.userStates[userID]
	if !exists {
		return None
	}
	return state
}

func (m *MemoryManager) ClearUserState(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.userStates, userID)
}

func (m *MemoryManager) SetTempData(userID int64, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tempData[userID] == nil {
		m.tempData[userID] = make(map[string]string)
	}
	m.tempData[userID][key] = value
}

func (m *MemoryManager) GetTempData(userID int64, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	userData, exists := m.tempData[userID]
	if !exists {
		return "", false
	}
	value, exists := userData[key]
	return value, exists
}

func (m *MemoryManager) ClearTempData(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tempData, userID)
}
