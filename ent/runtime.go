// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/halfmoonlabs/chatloop/ent/interaction"
	"github.com/halfmoonlabs/chatloop/ent/protocolauditlog"
	"github.com/halfmoonlabs/chatloop/ent/protocolstatus"
	"github.com/halfmoonlabs/chatloop/ent/quarantinemessage"
	"github.com/halfmoonlabs/chatloop/ent/recoveryoperation"
	"github.com/halfmoonlabs/chatloop/ent/schema"
	"github.com/halfmoonlabs/chatloop/ent/statustransition"
	"github.com/halfmoonlabs/chatloop/ent/usercurrentstatus"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	interactionFields := schema.Interaction{}.Fields()
	_ = interactionFields
	// interactionDescLastMessageID is the schema descriptor for last_message_id field.
	interactionDescLastMessageID := interactionFields[4].Descriptor()
	// interaction.DefaultLastMessageID holds the default value on creation for the last_message_id field.
	interaction.DefaultLastMessageID = interactionDescLastMessageID.Default.(int64)
	// interactionDescPriorityScore is the schema descriptor for priority_score field.
	interactionDescPriorityScore := interactionFields[11].Descriptor()
	// interaction.DefaultPriorityScore holds the default value on creation for the priority_score field.
	interaction.DefaultPriorityScore = interactionDescPriorityScore.Default.(float64)
	// interactionDescRecovered is the schema descriptor for recovered field.
	interactionDescRecovered := interactionFields[22].Descriptor()
	// interaction.DefaultRecovered holds the default value on creation for the recovered field.
	interaction.DefaultRecovered = interactionDescRecovered.Default.(bool)
	// interactionDescCreatedAt is the schema descriptor for created_at field.
	interactionDescCreatedAt := interactionFields[26].Descriptor()
	// interaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	interaction.DefaultCreatedAt = interactionDescCreatedAt.Default.(func() time.Time)
	// interactionDescUpdatedAt is the schema descriptor for updated_at field.
	interactionDescUpdatedAt := interactionFields[27].Descriptor()
	// interaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	interaction.DefaultUpdatedAt = interactionDescUpdatedAt.Default.(func() time.Time)
	// interaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	interaction.UpdateDefaultUpdatedAt = interactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	protocolauditlogFields := schema.ProtocolAuditLog{}.Fields()
	_ = protocolauditlogFields
	// protocolauditlogDescCreatedAt is the schema descriptor for created_at field.
	protocolauditlogDescCreatedAt := protocolauditlogFields[5].Descriptor()
	// protocolauditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	protocolauditlog.DefaultCreatedAt = protocolauditlogDescCreatedAt.Default.(func() time.Time)
	protocolstatusFields := schema.ProtocolStatus{}.Fields()
	_ = protocolstatusFields
	// protocolstatusDescActive is the schema descriptor for active field.
	protocolstatusDescActive := protocolstatusFields[1].Descriptor()
	// protocolstatus.DefaultActive holds the default value on creation for the active field.
	protocolstatus.DefaultActive = protocolstatusDescActive.Default.(bool)
	// protocolstatusDescUpdatedAt is the schema descriptor for updated_at field.
	protocolstatusDescUpdatedAt := protocolstatusFields[5].Descriptor()
	// protocolstatus.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	protocolstatus.DefaultUpdatedAt = protocolstatusDescUpdatedAt.Default.(func() time.Time)
	// protocolstatus.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	protocolstatus.UpdateDefaultUpdatedAt = protocolstatusDescUpdatedAt.UpdateDefault.(func() time.Time)
	quarantinemessageFields := schema.QuarantineMessage{}.Fields()
	_ = quarantinemessageFields
	// quarantinemessageDescCreatedAt is the schema descriptor for created_at field.
	quarantinemessageDescCreatedAt := quarantinemessageFields[8].Descriptor()
	// quarantinemessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	quarantinemessage.DefaultCreatedAt = quarantinemessageDescCreatedAt.Default.(func() time.Time)
	recoveryoperationFields := schema.RecoveryOperation{}.Fields()
	_ = recoveryoperationFields
	// recoveryoperationDescStartedAt is the schema descriptor for started_at field.
	recoveryoperationDescStartedAt := recoveryoperationFields[1].Descriptor()
	// recoveryoperation.DefaultStartedAt holds the default value on creation for the started_at field.
	recoveryoperation.DefaultStartedAt = recoveryoperationDescStartedAt.Default.(func() time.Time)
	// recoveryoperationDescUsersScanned is the schema descriptor for users_scanned field.
	recoveryoperationDescUsersScanned := recoveryoperationFields[3].Descriptor()
	// recoveryoperation.DefaultUsersScanned holds the default value on creation for the users_scanned field.
	recoveryoperation.DefaultUsersScanned = recoveryoperationDescUsersScanned.Default.(int)
	// recoveryoperationDescMessagesRecovered is the schema descriptor for messages_recovered field.
	recoveryoperationDescMessagesRecovered := recoveryoperationFields[4].Descriptor()
	// recoveryoperation.DefaultMessagesRecovered holds the default value on creation for the messages_recovered field.
	recoveryoperation.DefaultMessagesRecovered = recoveryoperationDescMessagesRecovered.Default.(int)
	// recoveryoperationDescErrors is the schema descriptor for errors field.
	recoveryoperationDescErrors := recoveryoperationFields[5].Descriptor()
	// recoveryoperation.DefaultErrors holds the default value on creation for the errors field.
	recoveryoperation.DefaultErrors = recoveryoperationDescErrors.Default.(int)
	statustransitionFields := schema.StatusTransition{}.Fields()
	_ = statustransitionFields
	// statustransitionDescDeltaLtvUsd is the schema descriptor for delta_ltv_usd field.
	statustransitionDescDeltaLtvUsd := statustransitionFields[4].Descriptor()
	// statustransition.DefaultDeltaLtvUsd holds the default value on creation for the delta_ltv_usd field.
	statustransition.DefaultDeltaLtvUsd = statustransitionDescDeltaLtvUsd.Default.(float64)
	// statustransitionDescCreatedAt is the schema descriptor for created_at field.
	statustransitionDescCreatedAt := statustransitionFields[7].Descriptor()
	// statustransition.DefaultCreatedAt holds the default value on creation for the created_at field.
	statustransition.DefaultCreatedAt = statustransitionDescCreatedAt.Default.(func() time.Time)
	usercurrentstatusFields := schema.UserCurrentStatus{}.Fields()
	_ = usercurrentstatusFields
	// usercurrentstatusDescLtvTotalUsd is the schema descriptor for ltv_total_usd field.
	usercurrentstatusDescLtvTotalUsd := usercurrentstatusFields[2].Descriptor()
	// usercurrentstatus.DefaultLtvTotalUsd holds the default value on creation for the ltv_total_usd field.
	usercurrentstatus.DefaultLtvTotalUsd = usercurrentstatusDescLtvTotalUsd.Default.(float64)
	// usercurrentstatusDescUpdatedAt is the schema descriptor for updated_at field.
	usercurrentstatusDescUpdatedAt := usercurrentstatusFields[4].Descriptor()
	// usercurrentstatus.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usercurrentstatus.DefaultUpdatedAt = usercurrentstatusDescUpdatedAt.Default.(func() time.Time)
	// usercurrentstatus.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usercurrentstatus.UpdateDefaultUpdatedAt = usercurrentstatusDescUpdatedAt.UpdateDefault.(func() time.Time)
}
