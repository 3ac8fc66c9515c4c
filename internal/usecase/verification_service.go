package usecase

import (
	"context"
	"time"

	"trace/internal/domain/entity"
	domainerrors "trace/internal/domain/errors"
	"trace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultVerificationMethod tags audit records whose caller did not name a channel.
const defaultVerificationMethod = "api"

// Verify runs one verification attempt. Every attempt leaves an audit record,
// including failed lookups and checks against non-active products. The lookup,
// the counter update and the audit insert share one transaction.
func (srv *productService) Verify(ctx context.Context, input *VerifyProductInput) (*VerifyProductOutput, error) {
	if input.ChipID == "" && input.SNCode == "" && input.AntiFakeCode == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("at least one lookup key is required")
	}

	method := input.Method
	if method == "" {
		method = defaultVerificationMethod
	}

	output := &VerifyProductOutput{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		verificationRepo := repoFactory.VerificationRepo()

		product, err := srv.resolveProduct(ctx, productRepo, input)
		if err != nil && !errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(err, "failed to resolve product")
		}

		record := &entity.VerificationRecord{
			Method:     method,
			Location:   input.Location,
			DeviceInfo: input.DeviceInfo,
		}

		switch {
		case product == nil:
			// No key matched: audit the failed attempt without a product reference.
			record.Result = false
			record.Notes = "验证失败: " + notesOrDefault(input.Notes, "产品不存在")
		case product.Status != entity.ProductStatusActive:
			record.ProductID = &product.ID
			record.Result = false
			record.Notes = "验证失败: 产品状态为" + string(product.Status)
			output.Found = true
			output.Status = product.Status
		default:
			updated, err := productRepo.RecordVerification(ctx, product.ID, time.Now())
			if err != nil {
				return errors.WithStack(err)
			}
			record.ProductID = &updated.ID
			record.Result = true
			record.Notes = notesOrDefault(input.Notes, "验证成功")
			output.Found = true
			output.Verified = true
			output.Status = updated.Status
			output.Product = toProductView(updated)
		}

		return errors.WithStack(verificationRepo.Create(ctx, record))
	})

	if err != nil {
		srv.logger.Error("Failed to execute verification transaction", "error", err)

		return nil, errors.Wrap(err, "failed to execute verification transaction")
	}
	srv.logger.Debug("Verification attempt recorded",
		"found", output.Found, "verified", output.Verified, "method", method)

	return output, nil
}

// notesOrDefault keeps the caller's notes on the audit record, falling back to
// the outcome message when none were supplied.
func notesOrDefault(notes, fallback string) string {
	if notes == "" {
		return fallback
	}

	return notes
}

// resolveProduct looks the product up by the supplied keys in priority order:
// chip_id, then sn_code, then anti_fake_code.
func (srv *productService) resolveProduct(ctx context.Context, productRepo repository.ProductRepository, input *VerifyProductInput) (*entity.Product, error) {
	if input.ChipID != "" {
		return productRepo.FindByChipID(ctx, input.ChipID)
	}
	if input.SNCode != "" {
		return productRepo.FindBySNCode(ctx, input.SNCode)
	}

	return productRepo.FindByAntiFakeCode(ctx, input.AntiFakeCode)
}

// ListVerificationHistory returns a page of a product's audit trail.
func (srv *productService) ListVerificationHistory(ctx context.Context, productID uuid.UUID, page, limit int) (*ListHistoryOutput, error) {
	if err := validatePageWindow(page, limit); err != nil {
		return nil, err
	}

	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	offset := (page - 1) * limit

	records, total, err := srv.verificationRepo.ListByProduct(ctx, productID, offset, limit)
	if err != nil {
		srv.logger.Error("Failed to list verification history", "error", err, "productID", productID)

		return nil, errors.Wrap(err, "failed to list verification history")
	}

	return &ListHistoryOutput{
		Records:    records,
		Pagination: NewPagination(page, limit, total),
	}, nil
}

// toProductView strips the internal registry fields from a product before it
// is shown to a verifying customer.
func toProductView(product *entity.Product) *ProductView {
	if product == nil {
		return nil
	}

	return &ProductView{
		ID:                product.ID,
		ChipID:            product.ChipID,
		SNCode:            product.SNCode,
		ProductName:       product.ProductName,
		ProductModel:      product.ProductModel,
		BatchNumber:       product.BatchNumber,
		ManufactureDate:   product.ManufactureDate,
		FactoryLocation:   product.FactoryLocation,
		AntiFakeCode:      product.AntiFakeCode,
		VerificationCount: product.VerificationCount,
		LastVerifiedAt:    product.LastVerifiedAt,
		Status:            string(product.Status),
	}
}
