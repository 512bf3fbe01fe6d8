package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/subtally/subtally/constants"
	"github.com/subtally/subtally/gen/ent"
	"github.com/subtally/subtally/gen/ent/vendor"
	"github.com/subtally/subtally/internal/entity"
	"github.com/subtally/subtally/internal/patterns"
	"github.com/subtally/subtally/internal/utils"
)

type VendorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	ListVendors(ctx context.Context) ([]*entity.Vendor, error)
	FindOrCreate(ctx context.Context, v entity.Vendor, senderDomain string) (*entity.Vendor, error)
	VendorTypeByName(ctx context.Context, normalizedName string) (constants.VendorType, bool, error)
}

type vendorRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVendorRepository(client *ent.Client, logger *slog.Logger) VendorRepository {
	return &vendorRepository{
		client: client,
		logger: logger,
	}
}

func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	v, err := r.client.Vendor.Query().Where(vendor.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToVendor(v), nil
}

func (r *vendorRepository) ListVendors(ctx context.Context) ([]*entity.Vendor, error) {
	vlist, err := r.client.Vendor.Query().Order(vendor.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list vendors", "error", err)
		return nil, err
	}
	result := make([]*entity.Vendor, len(vlist))
	for i, v := range vlist {
		result[i] = utils.ToVendor(v)
	}
	return result, nil
}

// FindOrCreate resolves the canonical vendor row. Lookup order: normalized
// name, then domain when the domain identifies a company (generic mail
// providers never match a vendor). A miss creates the row; a concurrent
// create loses the race on the unique normalized_name index and re-reads.
func (r *vendorRepository) FindOrCreate(ctx context.Context, v entity.Vendor, senderDomain string) (*entity.Vendor, error) {
	existing, err := r.client.Vendor.Query().
		Where(vendor.NormalizedName(v.NormalizedName)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}
	if existing == nil {
		domain := v.Domain
		if domain == "" {
			domain = senderDomain
		}
		if domain != "" && !patterns.IsGenericDomain(domain) {
			existing, err = r.client.Vendor.Query().
				Where(vendor.Domain(domain)).
				First(ctx)
			if err != nil && !ent.IsNotFound(err) {
				return nil, err
			}
		}
	}
	if existing != nil {
		return r.fillMissing(ctx, existing, v)
	}

	created, err := r.client.Vendor.Create().
		SetName(v.Name).
		SetNormalizedName(v.NormalizedName).
		SetDomain(v.Domain).
		SetCategory(v.Category).
		SetVendorType(vendor.VendorType(v.VendorType)).
		SetIsSaas(v.IsSaaS).
		Save(ctx)
	if err != nil {
		if !ent.IsConstraintError(err) {
			r.logger.Error("failed to create vendor", "name", v.Name, "error", err)
			return nil, err
		}
		// lost the insert race; the winner's row is the canonical one
		existing, qerr := r.client.Vendor.Query().
			Where(vendor.NormalizedName(v.NormalizedName)).
			Only(ctx)
		if qerr != nil {
			return nil, qerr
		}
		return r.fillMissing(ctx, existing, v)
	}
	r.logger.Info("vendor created", "name", created.Name, "category", created.Category)
	return utils.ToVendor(created), nil
}

// fillMissing enriches an existing row with fields a later detection supplied.
// Present values are never overwritten; vendors accrete detail, they do not
// flip-flop between detections.
func (r *vendorRepository) fillMissing(ctx context.Context, existing *ent.Vendor, v entity.Vendor) (*entity.Vendor, error) {
	upd := existing.Update()
	dirty := false
	if existing.Domain == "" && v.Domain != "" {
		upd = upd.SetDomain(v.Domain)
		dirty = true
	}
	if existing.Category == constants.UncategorizedCategory && v.Category != "" && v.Category != constants.UncategorizedCategory {
		upd = upd.SetCategory(v.Category)
		dirty = true
	}
	if !existing.IsSaas && v.IsSaaS {
		upd = upd.SetIsSaas(true)
		dirty = true
	}
	if !dirty {
		return utils.ToVendor(existing), nil
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToVendor(updated), nil
}

// VendorTypeByName reports the stored classification, satisfying
// patterns.VendorTypeStore so pattern rules can defer to persisted overrides.
func (r *vendorRepository) VendorTypeByName(ctx context.Context, normalizedName string) (constants.VendorType, bool, error) {
	v, err := r.client.Vendor.Query().
		Where(vendor.NormalizedName(normalizedName)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return constants.VendorType(v.VendorType), true, nil
}
