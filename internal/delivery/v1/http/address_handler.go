package http

import (
	"net/http"

	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
)

type AddressHandler struct {
	addressUC usecase.AddressUC
	logger    logger.Logger
}

func NewAddressHandler(addressUC usecase.AddressUC, logger logger.Logger) *AddressHandler {
	return &AddressHandler{addressUC: addressUC, logger: logger}
}

// listAddresses
//
//	@Summary	Адреса текущего пользователя
//	@Tags		addresses
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	AddressResponse
//	@Router		/me/addresses [get]
func (a *AddressHandler) listAddresses(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	addresses, err := a.addressUC.ListAddresses(r.Context(), identity.ProfileID)
	if err != nil {
		a.logger.Errorf(err, "Failed to list addresses")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toAddressResponses(addresses))
}

// createAddress
//
//	@Summary	Добавление адреса доставки
//	@Tags		addresses
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	AddressResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/me/addresses [post]
func (a *AddressHandler) createAddress(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	var body struct {
		Label      string `json:"label"`
		Recipient  string `json:"recipient"`
		Line1      string `json:"line1"`
		Line2      string `json:"line2"`
		City       string `json:"city"`
		Region     string `json:"region"`
		PostalCode string `json:"postal_code"`
		Country    string `json:"country"`
		IsDefault  bool   `json:"is_default"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	address, err := a.addressUC.CreateAddress(r.Context(), &usecase.CreateAddressReq{
		ProfileID:  identity.ProfileID,
		Label:      body.Label,
		Recipient:  body.Recipient,
		Line1:      body.Line1,
		Line2:      body.Line2,
		City:       body.City,
		Region:     body.Region,
		PostalCode: body.PostalCode,
		Country:    body.Country,
		IsDefault:  body.IsDefault,
	})
	if err != nil {
		a.logger.Warnf("Address creation failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toAddressResponse(address))
}

// updateAddress
//
//	@Summary	Частичное обновление адреса
//	@Tags		addresses
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id	path		int	true	"ID адреса"
//	@Success	200	{object}	AddressResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/me/addresses/{id} [patch]
func (a *AddressHandler) updateAddress(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body struct {
		Label      *string `json:"label"`
		Recipient  *string `json:"recipient"`
		Line1      *string `json:"line1"`
		Line2      *string `json:"line2"`
		City       *string `json:"city"`
		Region     *string `json:"region"`
		PostalCode *string `json:"postal_code"`
		Country    *string `json:"country"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	address, err := a.addressUC.UpdateAddress(r.Context(), &usecase.UpdateAddressReq{
		ProfileID:  identity.ProfileID,
		AddressID:  id,
		Label:      body.Label,
		Recipient:  body.Recipient,
		Line1:      body.Line1,
		Line2:      body.Line2,
		City:       body.City,
		Region:     body.Region,
		PostalCode: body.PostalCode,
		Country:    body.Country,
	})
	if err != nil {
		a.logger.Warnf("Address update failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toAddressResponse(address))
}

// deleteAddress
//
//	@Summary	Удаление адреса
//	@Tags		addresses
//	@Security	BearerAuth
//	@Param		id	path	int	true	"ID адреса"
//	@Success	204
//	@Router		/me/addresses/{id} [delete]
func (a *AddressHandler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := a.addressUC.DeleteAddress(r.Context(), identity.ProfileID, id); err != nil {
		a.logger.Warnf("Address deletion failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

// setDefaultAddress
//
//	@Summary	Назначение адреса по умолчанию
//	@Tags		addresses
//	@Security	BearerAuth
//	@Param		id	path	int	true	"ID адреса"
//	@Success	204
//	@Router		/me/addresses/{id}/default [post]
func (a *AddressHandler) setDefaultAddress(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := a.addressUC.SetDefaultAddress(r.Context(), identity.ProfileID, id); err != nil {
		a.logger.Warnf("Set default address failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}
