package trainer

// ==================== Error Messages ====================

const (
	ErrFmtPartyFull     = "%w: %s already has %d members"
	ErrFmtDuplicateName = "%w: %s already has a member named %q"
	ErrFmtNilCreature   = "%w: nil creature"
)

// ==================== Log Messages ====================

const (
	LogMsgMemberAdded    = "Creature joined party"
	LogMsgPartyFull      = "Party is full, creature not added"
	LogMsgBattleRecorded = "Battle recorded on trainer card"
)
