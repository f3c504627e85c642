package usecase

import (
	"context"
	"strings"

	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
)

// AddressUseCase реализует управление адресами доставки пользователя.
type AddressUseCase struct {
	addressRepo AddressRepository
	logger      logger.Logger
}

func NewAddressUC(addressRepo AddressRepository, logger logger.Logger) *AddressUseCase {
	return &AddressUseCase{
		addressRepo: addressRepo,
		logger:      logger,
	}
}

// CreateAddress создаёт адрес; при IsDefault он атомарно становится единственным адресом по умолчанию.
func (a *AddressUseCase) CreateAddress(ctx context.Context, req *CreateAddressReq) (*domain.Address, error) {
	const op = "AddressUseCase.CreateAddress"

	if err := validateAddress(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	address := domain.NewAddress(
		req.ProfileID,
		strings.TrimSpace(req.Label),
		strings.TrimSpace(req.Recipient),
		strings.TrimSpace(req.Line1),
		strings.TrimSpace(req.Line2),
		strings.TrimSpace(req.City),
		strings.TrimSpace(req.Region),
		strings.TrimSpace(req.PostalCode),
		strings.TrimSpace(req.Country),
	)

	created, err := a.addressRepo.Create(ctx, address)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.IsDefault {
		if err := a.addressRepo.SetDefault(ctx, req.ProfileID, created.ID); err != nil {
			return nil, e.Wrap(op, err)
		}
		created.IsDefault = true
	}

	return created, nil
}

// UpdateAddress применяет частичное обновление адреса владельца. nil-поля не меняются.
func (a *AddressUseCase) UpdateAddress(ctx context.Context, req *UpdateAddressReq) (*domain.Address, error) {
	const op = "AddressUseCase.UpdateAddress"

	address, err := a.getOwned(ctx, req.ProfileID, req.AddressID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Label != nil {
		address.Label = strings.TrimSpace(*req.Label)
	}
	if req.Recipient != nil {
		address.Recipient = strings.TrimSpace(*req.Recipient)
	}
	if req.Line1 != nil {
		address.Line1 = strings.TrimSpace(*req.Line1)
	}
	if req.Line2 != nil {
		address.Line2 = strings.TrimSpace(*req.Line2)
	}
	if req.City != nil {
		address.City = strings.TrimSpace(*req.City)
	}
	if req.Region != nil {
		address.Region = strings.TrimSpace(*req.Region)
	}
	if req.PostalCode != nil {
		address.PostalCode = strings.TrimSpace(*req.PostalCode)
	}
	if req.Country != nil {
		address.Country = strings.TrimSpace(*req.Country)
	}

	updated, err := a.addressRepo.Update(ctx, address)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// DeleteAddress удаляет адрес владельца.
func (a *AddressUseCase) DeleteAddress(ctx context.Context, profileID, addressID int64) error {
	const op = "AddressUseCase.DeleteAddress"

	if _, err := a.getOwned(ctx, profileID, addressID); err != nil {
		return e.Wrap(op, err)
	}

	if err := a.addressRepo.Delete(ctx, addressID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// ListAddresses возвращает адреса владельца.
func (a *AddressUseCase) ListAddresses(ctx context.Context, profileID int64) ([]domain.Address, error) {
	const op = "AddressUseCase.ListAddresses"

	addresses, err := a.addressRepo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return addresses, nil
}

// SetDefaultAddress атомарно делает адрес единственным адресом по умолчанию:
// снятие флага с остальных и установка на целевой выполняются одной транзакцией.
func (a *AddressUseCase) SetDefaultAddress(ctx context.Context, profileID, addressID int64) error {
	const op = "AddressUseCase.SetDefaultAddress"

	if _, err := a.getOwned(ctx, profileID, addressID); err != nil {
		return e.Wrap(op, err)
	}

	if err := a.addressRepo.SetDefault(ctx, profileID, addressID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// getOwned возвращает адрес, только если он принадлежит профилю.
// Чужой адрес неотличим от отсутствующего.
func (a *AddressUseCase) getOwned(ctx context.Context, profileID, addressID int64) (*domain.Address, error) {
	address, err := a.addressRepo.GetByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if address.ProfileID != profileID {
		return nil, e.ErrAddressNotFound
	}

	return address, nil
}

func validateAddress(req *CreateAddressReq) error {
	if strings.TrimSpace(req.Recipient) == "" ||
		strings.TrimSpace(req.Line1) == "" ||
		strings.TrimSpace(req.City) == "" ||
		strings.TrimSpace(req.PostalCode) == "" ||
		strings.TrimSpace(req.Country) == "" {
		return e.ErrMissingFields
	}

	return nil
}
