package http

import (
	"net/http"

	"github.com/lavka-tech/storefront-backend/internal/usecase"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
)

type AuthHandler struct {
	authUC usecase.AuthUC
	logger logger.Logger
}

func NewAuthHandler(authUC usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUC: authUC, logger: logger}
}

// signUp
//
//	@Summary		Регистрация пользователя
//	@Description	Создаёт профиль покупателя и сразу открывает сессию
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	AuthResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/auth/signup [post]
func (a *AuthHandler) signUp(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.authUC.SignUp(r.Context(), usecase.NewSignUpReq(body.Email, body.Password, body.FullName))
	if err != nil {
		a.logger.Warnf("Sign up failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toAuthResponse(res))
}

// signIn
//
//	@Summary	Вход по email и паролю
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	AuthResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/auth/signin [post]
func (a *AuthHandler) signIn(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.authUC.SignIn(r.Context(), usecase.NewSignInReq(body.Email, body.Password))
	if err != nil {
		a.logger.Warnf("Sign in failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toAuthResponse(res))
}

// signOut
//
//	@Summary	Выход: отзыв текущей сессии
//	@Tags		auth
//	@Security	BearerAuth
//	@Success	204
//	@Router		/auth/signout [post]
func (a *AuthHandler) signOut(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	if err := a.authUC.SignOut(r.Context(), identity.SessionID); err != nil {
		a.logger.Warnf("Sign out failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

// me
//
//	@Summary	Профиль текущего пользователя
//	@Tags		auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	ProfileResponse
//	@Router		/me [get]
func (a *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	profile, err := a.authUC.Me(r.Context(), identity.ProfileID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProfileResponse(profile))
}

// updateMe
//
//	@Summary	Частичное обновление профиля
//	@Tags		auth
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	ProfileResponse
//	@Router		/me [patch]
func (a *AuthHandler) updateMe(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r.Context())

	var body struct {
		FullName  *string `json:"full_name"`
		AvatarURL *string `json:"avatar_url"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	profile, err := a.authUC.UpdateProfile(r.Context(), &usecase.UpdateProfileReq{
		ProfileID: identity.ProfileID,
		FullName:  body.FullName,
		AvatarURL: body.AvatarURL,
	})
	if err != nil {
		a.logger.Warnf("Profile update failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProfileResponse(profile))
}
