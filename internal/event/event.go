package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Event types emitted by the engine
const (
	AchievementUnlocked Type = "achievement.unlocked"
	PlayerLevelUp       Type = "player.level_up"
	BusinessPurchased   Type = "business.purchased"
	BusinessUpgraded    Type = "business.upgraded"
	UpgradePurchased    Type = "upgrade.purchased"
	ClickCritical       Type = "click.critical"
	JobStarted          Type = "job.started"
	JobClaimed          Type = "job.claimed"
	GameReset           Type = "game.reset"
	StateHydrated       Type = "state.hydrated"
)

// Typed event payloads

// AchievementUnlockedPayloadV1 carries the display fields the notification
// consumer renders as a one-shot toast.
type AchievementUnlockedPayloadV1 struct {
	AchievementID string        `json:"achievement_id"`
	Title         string        `json:"title"`
	Icon          string        `json:"icon"`
	Reward        domain.Reward `json:"reward"`
	UnlockedAt    int64         `json:"unlocked_at"`
}

// PlayerLevelUpPayloadV1 is the typed payload for level up events
type PlayerLevelUpPayloadV1 struct {
	OldLevel int     `json:"old_level"`
	NewLevel int     `json:"new_level"`
	XP       float64 `json:"xp"`
}

// BusinessPurchasedPayloadV1 is the typed payload for business purchases
type BusinessPurchasedPayloadV1 struct {
	BusinessID    string  `json:"business_id"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
	FirstPurchase bool    `json:"first_purchase"`
}

// BusinessUpgradedPayloadV1 is the typed payload for business level upgrades
type BusinessUpgradedPayloadV1 struct {
	BusinessID string  `json:"business_id"`
	NewLevel   int     `json:"new_level"`
	NewIncome  float64 `json:"new_income"`
}

// UpgradePurchasedPayloadV1 covers both business-targeted and click upgrades
type UpgradePurchasedPayloadV1 struct {
	UpgradeID string  `json:"upgrade_id"`
	Kind      string  `json:"kind"` // "business" or "click"
	Cost      float64 `json:"cost"`
}

// ClickCriticalPayloadV1 is the typed payload for critical taps
type ClickCriticalPayloadV1 struct {
	Gain       float64 `json:"gain"`
	Multiplier float64 `json:"multiplier"`
	Combo      int     `json:"combo"`
}

// JobPayloadV1 is the typed payload for job lifecycle events
type JobPayloadV1 struct {
	JobID     string        `json:"job_id"`
	EndTimeMS int64         `json:"end_time_ms,omitempty"`
	Reward    domain.Reward `json:"reward,omitempty"`
}

// Type-safe event constructors

// NewAchievementUnlockedEvent creates a new achievement unlocked event
func NewAchievementUnlockedEvent(id, title, icon string, reward domain.Reward) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AchievementUnlocked,
		Payload: AchievementUnlockedPayloadV1{
			AchievementID: id,
			Title:         title,
			Icon:          icon,
			Reward:        reward,
			UnlockedAt:    time.Now().UnixMilli(),
		},
	}
}

// NewPlayerLevelUpEvent creates a new level up event
func NewPlayerLevelUpEvent(oldLevel, newLevel int, xp float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerLevelUp,
		Payload: PlayerLevelUpPayloadV1{
			OldLevel: oldLevel,
			NewLevel: newLevel,
			XP:       xp,
		},
	}
}

// NewBusinessPurchasedEvent creates a new business purchase event
func NewBusinessPurchasedEvent(businessID string, quantity int, price float64, first bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BusinessPurchased,
		Payload: BusinessPurchasedPayloadV1{
			BusinessID:    businessID,
			Quantity:      quantity,
			Price:         price,
			FirstPurchase: first,
		},
	}
}

// NewBusinessUpgradedEvent creates a new business upgrade event
func NewBusinessUpgradedEvent(businessID string, newLevel int, newIncome float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BusinessUpgraded,
		Payload: BusinessUpgradedPayloadV1{
			BusinessID: businessID,
			NewLevel:   newLevel,
			NewIncome:  newIncome,
		},
	}
}

// NewUpgradePurchasedEvent creates a new upgrade purchase event
func NewUpgradePurchasedEvent(upgradeID, kind string, cost float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UpgradePurchased,
		Payload: UpgradePurchasedPayloadV1{
			UpgradeID: upgradeID,
			Kind:      kind,
			Cost:      cost,
		},
	}
}

// NewJobStartedEvent creates a new job started event
func NewJobStartedEvent(jobID string, endTimeMS int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    JobStarted,
		Payload: JobPayloadV1{JobID: jobID, EndTimeMS: endTimeMS},
	}
}

// NewJobClaimedEvent creates a new job claimed event
func NewJobClaimedEvent(jobID string, reward domain.Reward) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    JobClaimed,
		Payload: JobPayloadV1{JobID: jobID, Reward: reward},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
