// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/subtally/subtally/db/ent/schema"
	"github.com/subtally/subtally/gen/ent/emailmessage"
	"github.com/subtally/subtally/gen/ent/subscription"
	"github.com/subtally/subtally/gen/ent/transaction"
	"github.com/subtally/subtally/gen/ent/vendor"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	emailmessageFields := schema.EmailMessage{}.Fields()
	_ = emailmessageFields
	// emailmessageDescMessageID is the schema descriptor for message_id field.
	emailmessageDescMessageID := emailmessageFields[2].Descriptor()
	// emailmessage.MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	emailmessage.MessageIDValidator = emailmessageDescMessageID.Validators[0].(func(string) error)
	// emailmessageDescCreatedAt is the schema descriptor for created_at field.
	emailmessageDescCreatedAt := emailmessageFields[8].Descriptor()
	// emailmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	emailmessage.DefaultCreatedAt = emailmessageDescCreatedAt.Default.(func() time.Time)
	// emailmessageDescID is the schema descriptor for id field.
	emailmessageDescID := emailmessageFields[0].Descriptor()
	// emailmessage.DefaultID holds the default value on creation for the id field.
	emailmessage.DefaultID = emailmessageDescID.Default.(func() uuid.UUID)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescSeats is the schema descriptor for seats field.
	subscriptionDescSeats := subscriptionFields[5].Descriptor()
	// subscription.SeatsValidator is a validator for the "seats" field. It is called by the builders before save.
	subscription.SeatsValidator = subscriptionDescSeats.Validators[0].(func(int) error)
	// subscriptionDescCurrency is the schema descriptor for currency field.
	subscriptionDescCurrency := subscriptionFields[9].Descriptor()
	// subscription.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	subscription.CurrencyValidator = subscriptionDescCurrency.Validators[0].(func(string) error)
	// subscriptionDescLastDetectedAt is the schema descriptor for last_detected_at field.
	subscriptionDescLastDetectedAt := subscriptionFields[12].Descriptor()
	// subscription.DefaultLastDetectedAt holds the default value on creation for the last_detected_at field.
	subscription.DefaultLastDetectedAt = subscriptionDescLastDetectedAt.Default.(func() time.Time)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[13].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionFields[14].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// subscriptionDescID is the schema descriptor for id field.
	subscriptionDescID := subscriptionFields[0].Descriptor()
	// subscription.DefaultID holds the default value on creation for the id field.
	subscription.DefaultID = subscriptionDescID.Default.(func() uuid.UUID)
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescVendorName is the schema descriptor for vendor_name field.
	transactionDescVendorName := transactionFields[5].Descriptor()
	// transaction.VendorNameValidator is a validator for the "vendor_name" field. It is called by the builders before save.
	transaction.VendorNameValidator = transactionDescVendorName.Validators[0].(func(string) error)
	// transactionDescNormalizedVendorName is the schema descriptor for normalized_vendor_name field.
	transactionDescNormalizedVendorName := transactionFields[6].Descriptor()
	// transaction.NormalizedVendorNameValidator is a validator for the "normalized_vendor_name" field. It is called by the builders before save.
	transaction.NormalizedVendorNameValidator = transactionDescNormalizedVendorName.Validators[0].(func(string) error)
	// transactionDescIsSaas is the schema descriptor for is_saas field.
	transactionDescIsSaas := transactionFields[9].Descriptor()
	// transaction.DefaultIsSaas holds the default value on creation for the is_saas field.
	transaction.DefaultIsSaas = transactionDescIsSaas.Default.(bool)
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionFields[11].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	// transactionDescID is the schema descriptor for id field.
	transactionDescID := transactionFields[0].Descriptor()
	// transaction.DefaultID holds the default value on creation for the id field.
	transaction.DefaultID = transactionDescID.Default.(func() uuid.UUID)
	vendorFields := schema.Vendor{}.Fields()
	_ = vendorFields
	// vendorDescName is the schema descriptor for name field.
	vendorDescName := vendorFields[1].Descriptor()
	// vendor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	vendor.NameValidator = vendorDescName.Validators[0].(func(string) error)
	// vendorDescNormalizedName is the schema descriptor for normalized_name field.
	vendorDescNormalizedName := vendorFields[2].Descriptor()
	// vendor.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	vendor.NormalizedNameValidator = vendorDescNormalizedName.Validators[0].(func(string) error)
	// vendorDescCategory is the schema descriptor for category field.
	vendorDescCategory := vendorFields[4].Descriptor()
	// vendor.DefaultCategory holds the default value on creation for the category field.
	vendor.DefaultCategory = vendorDescCategory.Default.(string)
	// vendorDescIsSaas is the schema descriptor for is_saas field.
	vendorDescIsSaas := vendorFields[6].Descriptor()
	// vendor.DefaultIsSaas holds the default value on creation for the is_saas field.
	vendor.DefaultIsSaas = vendorDescIsSaas.Default.(bool)
	// vendorDescCreatedAt is the schema descriptor for created_at field.
	vendorDescCreatedAt := vendorFields[7].Descriptor()
	// vendor.DefaultCreatedAt holds the default value on creation for the created_at field.
	vendor.DefaultCreatedAt = vendorDescCreatedAt.Default.(func() time.Time)
	// vendorDescUpdatedAt is the schema descriptor for updated_at field.
	vendorDescUpdatedAt := vendorFields[8].Descriptor()
	// vendor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vendor.DefaultUpdatedAt = vendorDescUpdatedAt.Default.(func() time.Time)
	// vendor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vendor.UpdateDefaultUpdatedAt = vendorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vendorDescID is the schema descriptor for id field.
	vendorDescID := vendorFields[0].Descriptor()
	// vendor.DefaultID holds the default value on creation for the id field.
	vendor.DefaultID = vendorDescID.Default.(func() uuid.UUID)
}
