package battle

import "github.com/Neworly/one-year-one-code/internal/domain"

// Defaults applied to zero-valued Options fields
const (
	DefaultMaxRounds = 1000
	DefaultTieBreak  = domain.SideA
)

// ==================== Narration ====================

const (
	MsgAttack        = "%s used %s against %s for %d damage"
	MsgFaint         = "%s was defeated by %s"
	MsgNoMoves       = "%s has no usable moves and skips its turn"
	MsgSwitch        = "side %s sends out %s"
	MsgFinishedWin   = "side %s wins after %d rounds"
	MsgFinishedDraw  = "draw after %d rounds"
	MsgReasonStalled = "no combatant could act"
	MsgReasonLimit   = "round limit reached"
)

// ==================== Error Messages ====================

const (
	ErrFmtEmptyParty   = "%w: side %s"
	ErrFmtInvalidSide  = "%w: tie break side %q"
	ErrFmtMatchAborted = "match %s aborted: %w"
	ErrFmtEnqueue      = "failed to enqueue match %d: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgMatchStarted   = "Match started"
	LogMsgBattleStep     = "Battle step"
	LogMsgMatchFinished  = "Match finished"
	LogMsgPublishFailed  = "Failed to publish battle event"
	LogMsgSimStarted     = "Simulation started"
	LogMsgSimFinished    = "Simulation finished"
	LogMsgSimMatchFailed = "Simulated match failed"
)
