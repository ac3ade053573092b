package domain

// Card is a stored payment card reference, identified only by its number.
type Card struct {
	Number string `json:"number"`
}

// Label returns the text shown for the card in the card list.
func (c Card) Label() string {
	return "Card: " + c.Number
}
