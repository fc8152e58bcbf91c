package domain

// ItemStack is a single owned item entry in a backpack.
// Quantity is always >= 1 while the stack exists.
type ItemStack struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
