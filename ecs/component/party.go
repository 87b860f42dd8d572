package component

import "github.com/yumeututucosmology/RPG-sub000/party"

// PartyMember tags the two player characters. Slot is their cast index.
type PartyMember struct {
	Slot int
}

var PartyMemberComponent = NewComponent[PartyMember]()

// Party is a singleton holding the separation manager.
type Party struct {
	Party *party.Party
}

var PartyComponent = NewComponent[Party]()
