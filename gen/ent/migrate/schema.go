// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EmailMessagesColumns holds the columns for the "email_messages" table.
	EmailMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "message_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "sender", Type: field.TypeString, Nullable: true},
		{Name: "received_at", Type: field.TypeTime, Nullable: true},
		{Name: "outcome", Type: field.TypeString, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EmailMessagesTable holds the schema information for the "email_messages" table.
	EmailMessagesTable = &schema.Table{
		Name:       "email_messages",
		Columns:    EmailMessagesColumns,
		PrimaryKey: []*schema.Column{EmailMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "emailmessage_user_id_message_id",
				Unique:  true,
				Columns: []*schema.Column{EmailMessagesColumns[1], EmailMessagesColumns[2]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"gmail", "csv", "manual"}},
		{Name: "plan", Type: field.TypeString, Nullable: true},
		{Name: "seats", Type: field.TypeInt, Nullable: true},
		{Name: "billing_cycle", Type: field.TypeEnum, Nullable: true, Enums: []string{"monthly", "yearly"}},
		{Name: "renewal_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency", Type: field.TypeString, Nullable: true, Size: 3},
		{Name: "confidence_score", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "low"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "cancelled", "pending"}, Default: "active"},
		{Name: "last_detected_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "vendor_id", Type: field.TypeUUID},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_vendors_subscriptions",
				Columns:    []*schema.Column{SubscriptionsColumns[14]},
				RefColumns: []*schema.Column{VendorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subscription_user_id_vendor_id_source",
				Unique:  true,
				Columns: []*schema.Column{SubscriptionsColumns[1], SubscriptionsColumns[14], SubscriptionsColumns[2]},
			},
			{
				Name:    "subscription_user_id_renewal_date",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[1], SubscriptionsColumns[6]},
			},
		},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "upload_id", Type: field.TypeUUID},
		{Name: "tx_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "vendor_name", Type: field.TypeString},
		{Name: "normalized_vendor_name", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "raw_description", Type: field.TypeString, Nullable: true},
		{Name: "is_saas", Type: field.TypeBool, Default: false},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "vendor_id", Type: field.TypeUUID, Nullable: true},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transactions_vendors_transactions",
				Columns:    []*schema.Column{TransactionsColumns[11]},
				RefColumns: []*schema.Column{VendorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transaction_user_id_normalized_vendor_name",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[1], TransactionsColumns[5]},
			},
			{
				Name:    "transaction_upload_id",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[2]},
			},
		},
	}
	// VendorsColumns holds the columns for the "vendors" table.
	VendorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Default: "Uncategorized"},
		{Name: "vendor_type", Type: field.TypeEnum, Enums: []string{"FIXED_PLAN", "NEGOTIABLE"}, Default: "NEGOTIABLE"},
		{Name: "is_saas", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VendorsTable holds the schema information for the "vendors" table.
	VendorsTable = &schema.Table{
		Name:       "vendors",
		Columns:    VendorsColumns,
		PrimaryKey: []*schema.Column{VendorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vendor_normalized_name",
				Unique:  true,
				Columns: []*schema.Column{VendorsColumns[2]},
			},
			{
				Name:    "vendor_domain",
				Unique:  false,
				Columns: []*schema.Column{VendorsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EmailMessagesTable,
		SubscriptionsTable,
		TransactionsTable,
		VendorsTable,
	}
)

func init() {
	EmailMessagesTable.Annotation = &entsql.Annotation{
		Table: "email_messages",
	}
	SubscriptionsTable.ForeignKeys[0].RefTable = VendorsTable
	SubscriptionsTable.Annotation = &entsql.Annotation{
		Table: "subscriptions",
	}
	TransactionsTable.ForeignKeys[0].RefTable = VendorsTable
	TransactionsTable.Annotation = &entsql.Annotation{
		Table: "transactions",
	}
	VendorsTable.Annotation = &entsql.Annotation{
		Table: "vendors",
	}
}
