package bridge

import "github.com/osse101/RavenCompanion_Go/internal/domain"

// ToggleCollectedRequest checks or unchecks an item as collected
type ToggleCollectedRequest struct {
	Type      string `json:"type" validate:"itemtype"`
	ID        string `json:"id" validate:"required,max=200"`
	Collected bool   `json:"collected"`
}

// SaveTrophyTierRequest sets one trophy tier flag
type SaveTrophyTierRequest struct {
	TrophyID string `json:"trophyId" validate:"required,max=200"`
	Tier     string `json:"tier" validate:"tier"`
	Checked  bool   `json:"checked"`
}

// SaveCosmeticStateRequest replaces a cosmetic's state
type SaveCosmeticStateRequest struct {
	ID    string               `json:"id" validate:"required,max=200"`
	State domain.CosmeticState `json:"state"`
}

// SetMaterialRequest sets an owned material quantity
type SetMaterialRequest struct {
	ID       string `json:"id" validate:"required,max=200"`
	Material string `json:"material" validate:"required"`
	Quantity int    `json:"quantity"`
}

// CounterRequest addresses one counter
type CounterRequest struct {
	ID string `json:"id" validate:"required,max=200"`
}

// IncrementCounterRequest adds to a counter
type IncrementCounterRequest struct {
	ID     string `json:"id" validate:"required,max=200"`
	Amount int    `json:"amount" validate:"min=-1000,max=1000"`
}

// SetCounterRequest replaces a counter's count
type SetCounterRequest struct {
	ID    string `json:"id" validate:"required,max=200"`
	Value int    `json:"value" validate:"min=0,max=999999"`
}

// RecordMilestoneRequest records how a tier was obtained
type RecordMilestoneRequest struct {
	ID     string `json:"id" validate:"required,max=200"`
	Tier   string `json:"tier" validate:"tier"`
	Method string `json:"method" validate:"method"`
	Count  int    `json:"count" validate:"min=0,max=999999"`
}

// RemoveMilestoneRequest drops a tier's milestone
type RemoveMilestoneRequest struct {
	ID   string `json:"id" validate:"required,max=200"`
	Tier string `json:"tier" validate:"tier"`
}

// TrophyCounterRequest resolves the counter behind a trophy
type TrophyCounterRequest struct {
	TrophyID string `json:"trophyId" validate:"required,max=200"`
}

// AddTargetRequest pins an item to the overlay
type AddTargetRequest struct {
	ID   string `json:"id" validate:"required,max=200"`
	Name string `json:"name" validate:"max=200"`
	Type string `json:"type" validate:"omitempty,itemtype"`
}

// RemoveTargetRequest unpins an item
type RemoveTargetRequest struct {
	ID string `json:"id" validate:"required"`
}
