package domain

// TrainerCard tracks a trainer's public record
type TrainerCard struct {
	Name                 string   `json:"name"`
	Badges               []string `json:"badges"`
	Battles              int      `json:"battles"`
	Wins                 int      `json:"wins"`
	CreaturesEncountered int      `json:"creatures_encountered"`
}
