package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Contact is one pair of touching bodies reported for a collision rule.
type Contact struct {
	Rule int
	A, B *resolv.Object
}

// ContactData holds this frame's contacts in rule-table order.
type ContactData struct {
	Contacts []Contact
}

var Contacts = donburi.NewComponentType[ContactData]()
