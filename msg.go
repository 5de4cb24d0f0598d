package bankview

import nt "bankview/entity"

// pushMsg puts a screen on top of the stack
type pushMsg struct {
	screen Screen
}

// clientsMsg contains a fetched page of clients
type clientsMsg struct {
	records []nt.Record
}

// accountsMsg contains a client's accounts
type accountsMsg struct {
	clientId string
	records  []nt.Record
}

// movementsMsg contains an account's movements
type movementsMsg struct {
	clientId string
	number   string
	records  []nt.Record
}

// deletedMsg follows a successful client delete
type deletedMsg struct {
	id string
}

// savedMsg follows a successful client create or update
type savedMsg struct {
	client nt.Client
	create bool
}

// exportedMsg follows a saved report
type exportedMsg struct {
	clientId string
	path     string
}
