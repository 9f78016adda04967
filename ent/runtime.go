// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/clawdeck/clawdeck/ent/chatmessagesnapshot"
	"github.com/clawdeck/clawdeck/ent/chatsession"
	"github.com/clawdeck/clawdeck/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessagesnapshotFields := schema.ChatMessageSnapshot{}.Fields()
	_ = chatmessagesnapshotFields
	// chatmessagesnapshotDescCreatedAt is the schema descriptor for created_at field.
	chatmessagesnapshotDescCreatedAt := chatmessagesnapshotFields[9].Descriptor()
	// chatmessagesnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessagesnapshot.DefaultCreatedAt = chatmessagesnapshotDescCreatedAt.Default.(func() time.Time)
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescLastMessageAt is the schema descriptor for last_message_at field.
	chatsessionDescLastMessageAt := chatsessionFields[6].Descriptor()
	// chatsession.DefaultLastMessageAt holds the default value on creation for the last_message_at field.
	chatsession.DefaultLastMessageAt = chatsessionDescLastMessageAt.Default.(func() time.Time)
	// chatsessionDescMessageCount is the schema descriptor for message_count field.
	chatsessionDescMessageCount := chatsessionFields[7].Descriptor()
	// chatsession.DefaultMessageCount holds the default value on creation for the message_count field.
	chatsession.DefaultMessageCount = chatsessionDescMessageCount.Default.(int)
	// chatsessionDescIsActive is the schema descriptor for is_active field.
	chatsessionDescIsActive := chatsessionFields[8].Descriptor()
	// chatsession.DefaultIsActive holds the default value on creation for the is_active field.
	chatsession.DefaultIsActive = chatsessionDescIsActive.Default.(bool)
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[9].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
}
