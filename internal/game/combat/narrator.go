package combat

import "go.uber.org/zap"

// Narrator resolves character actions and logs each outcome.
// Every action is logged at debug level; an action that defeats its target is also logged at info.
type Narrator struct {
	logger *zap.Logger
}

// NewNarrator creates a Narrator that logs to logger.
//
// Precondition: logger must be non-nil.
func NewNarrator(logger *zap.Logger) *Narrator {
	return &Narrator{logger: logger}
}

// Act resolves action by actor against target and logs the outcome.
//
// Postcondition: Returns the same Outcome as actor.Resolve(action, target).
func (n *Narrator) Act(actor *Character, action Action, target Target) Outcome {
	out := actor.Resolve(action, target)
	n.logger.Debug("combat action",
		zap.String("actor", out.Actor),
		zap.String("class", actor.Class()),
		zap.Stringer("action", out.Action),
		zap.String("target", out.Target),
		zap.Bool("applied", out.Applied),
		zap.Int("damage", out.Damage),
		zap.Int("target_health", out.TargetHealth),
	)
	if out.Applied && out.TargetHealth == 0 {
		n.logger.Info("combatant defeated",
			zap.String("actor", out.Actor),
			zap.String("target", out.Target),
		)
	}
	return out
}
