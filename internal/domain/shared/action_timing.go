package shared

// ActionTiming is the part of a turn an action consumes
type ActionTiming string

const (
	TimingAction      ActionTiming = "action"
	TimingBonusAction ActionTiming = "bonus_action"
	TimingReaction    ActionTiming = "reaction"
	TimingFree        ActionTiming = "free"
	TimingMovement    ActionTiming = "movement"
	TimingSpecial     ActionTiming = "special"
)

// RestType is the rest cadence that restores a limited feature
type RestType string

const (
	RestTypeShort RestType = "short"
	RestTypeLong  RestType = "long"
	// RestTypeDawn features come back at dawn, which the engine treats as a long rest
	RestTypeDawn RestType = "dawn"
	RestTypeNone RestType = "none"
)

// RecoversOnShortRest reports whether a short rest restores the feature
func (r RestType) RecoversOnShortRest() bool {
	return r == RestTypeShort
}
