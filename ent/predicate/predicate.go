// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Interaction is the predicate function for interaction builders.
type Interaction func(*sql.Selector)

// MessageCursor is the predicate function for messagecursor builders.
type MessageCursor func(*sql.Selector)

// ProtocolAuditLog is the predicate function for protocolauditlog builders.
type ProtocolAuditLog func(*sql.Selector)

// ProtocolStatus is the predicate function for protocolstatus builders.
type ProtocolStatus func(*sql.Selector)

// QuarantineMessage is the predicate function for quarantinemessage builders.
type QuarantineMessage func(*sql.Selector)

// RecoveryOperation is the predicate function for recoveryoperation builders.
type RecoveryOperation func(*sql.Selector)

// StatusTransition is the predicate function for statustransition builders.
type StatusTransition func(*sql.Selector)

// UserCurrentStatus is the predicate function for usercurrentstatus builders.
type UserCurrentStatus func(*sql.Selector)
