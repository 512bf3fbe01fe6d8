package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// EmailMessage records every scanned message. The unique (user_id, message_id)
// index is the idempotency guarantee: concurrent scans cannot both process one
// Gmail message.
type EmailMessage struct{ ent.Schema }

func (EmailMessage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "email_messages"},
	}
}

func (EmailMessage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.String("message_id").NotEmpty().Immutable(),
		field.String("subject").Optional(),
		field.String("sender").Optional(),
		field.Time("received_at").Optional().Nillable(),
		field.String("outcome").Optional(),
		field.Time("processed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (EmailMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "message_id").Unique(),
	}
}
