package model

// MaxListSize bounds every list query against the record store.
const MaxListSize = 100

// AdminID is the sentinel identity of the single administrative actor.
// It is not a stored record.
const AdminID = "admin"
