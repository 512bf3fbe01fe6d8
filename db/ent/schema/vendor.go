package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Vendor struct{ ent.Schema }

func (Vendor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vendors"},
	}
}

func (Vendor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		// identity key: lowercase, special chars stripped, whitespace collapsed
		field.String("normalized_name").NotEmpty(),
		field.String("domain").Optional(),
		field.String("category").Default("Uncategorized"),
		field.Enum("vendor_type").Values("FIXED_PLAN", "NEGOTIABLE").Default("NEGOTIABLE"),
		field.Bool("is_saas").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Vendor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subscriptions", Subscription.Type),
		edge.To("transactions", Transaction.Type),
	}
}

func (Vendor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("normalized_name").Unique(),
		index.Fields("domain"),
	}
}
