package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Subscription struct{ ent.Schema }

func (Subscription) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "subscriptions"},
	}
}

func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("vendor_id", uuid.UUID{}),
		field.Enum("source").Values("gmail", "csv", "manual"),
		field.String("plan").Optional().Nillable(),
		field.Int("seats").Optional().Nillable().Min(1),
		field.Enum("billing_cycle").Values("monthly", "yearly").Optional(),
		field.Time("renewal_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency").Optional().MaxLen(3),
		field.Enum("confidence_score").Values("low", "medium", "high").Default("low"),
		field.Enum("status").Values("active", "cancelled", "pending").Default("active"),
		field.Time("last_detected_at").Default(time.Now),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Subscription) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY subscriptions -> ONE vendor (FK: subscriptions.vendor_id)
		edge.From("vendor", Vendor.Type).
			Ref("subscriptions").
			Field("vendor_id").
			Required().
			Unique(),
	}
}

func (Subscription) Indexes() []ent.Index {
	return []ent.Index{
		// upsert key: repeated detections from one source update, not duplicate
		index.Fields("user_id", "vendor_id", "source").Unique(),
		index.Fields("user_id", "renewal_date"),
	}
}
