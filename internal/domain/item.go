package domain

// ItemDescriptor pairs an item name with its raw ability text,
// e.g. "Full Recover" -> "Heal: 999, Status: None".
type ItemDescriptor struct {
	Name        string `json:"name"`
	AbilityText string `json:"ability_text"`
}

// EffectPair is a single parsed "Name: value" entry of an ability text.
type EffectPair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Known effect names
const (
	EffectHeal   = "Heal"
	EffectStatus = "Status"
)
