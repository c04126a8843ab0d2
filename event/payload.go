package event

// NoBody marks a pointer press that resolved to empty space or decoration
const NoBody = -1

// PointerDownPayload carries the picked body index, or NoBody
type PointerDownPayload struct {
	Body int
}

// KeyPressPayload carries the pressed key symbol
type KeyPressPayload struct {
	Key rune
}

// ValuePayload carries a slider-style numeric assignment
type ValuePayload struct {
	Value float64
}
