package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/reflectdiary/diary-api/app/core"
	"github.com/reflectdiary/diary-api/pkg/errors"
	"github.com/reflectdiary/diary-api/pkg/i18n"
	"github.com/reflectdiary/diary-api/pkg/security"
	"github.com/reflectdiary/diary-api/pkg/types"
	"github.com/reflectdiary/diary-api/pkg/utils"
)

const MIN_PASSWORD_LENGTH = 6

type AuthLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAuthLogic(ctx context.Context, core *core.Core) *AuthLogic {
	return &AuthLogic{
		ctx:  ctx,
		core: core,
	}
}

// Login verifies the shared password against the singleton credential row
// and issues a time-limited bearer token carrying the user id.
func (l *AuthLogic) Login(password string) (string, *types.User, error) {
	user, err := l.core.Store().UserStore().GetFirst(l.ctx)
	if err != nil && err != sql.ErrNoRows {
		return "", nil, errors.New("AuthLogic.Login.UserStore.GetFirst", i18n.ERROR_INTERNAL, err)
	}
	if user == nil {
		return "", nil, errors.New("AuthLogic.Login.UserStore.GetFirst.nil", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	}

	if !utils.VerifyPassword(user.PasswordHash, password) {
		return "", nil, errors.New("AuthLogic.Login.VerifyPassword", i18n.ERROR_INVALID_PASSWORD, nil).Code(http.StatusUnauthorized)
	}

	token, err := security.SignUserToken(l.core.Cfg().Security.JWTSecret, user.ID, l.core.Cfg().Security.TokenTTL())
	if err != nil {
		return "", nil, errors.New("AuthLogic.Login.SignUserToken", i18n.ERROR_INTERNAL, err)
	}
	return token, user, nil
}

// ChangePassword re-verifies the current password before accepting the
// new one. The minimum length check lives here, not only in the client.
func (l *AuthLogic) ChangePassword(currentPassword, newPassword string) error {
	claims, ok := InjectTokenClaim(l.ctx)
	if !ok {
		return errors.New("AuthLogic.ChangePassword.InjectTokenClaim", i18n.ERROR_UNAUTHORIZED, nil).Code(http.StatusUnauthorized)
	}

	if len(newPassword) < MIN_PASSWORD_LENGTH {
		return errors.New("AuthLogic.ChangePassword.length", i18n.ERROR_PASSWORD_TOO_SHORT, nil).Code(http.StatusBadRequest)
	}

	user, err := l.core.Store().UserStore().Get(l.ctx, claims.UserID)
	if err != nil && err != sql.ErrNoRows {
		return errors.New("AuthLogic.ChangePassword.UserStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if user == nil {
		return errors.New("AuthLogic.ChangePassword.UserStore.Get.nil", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	}

	if !utils.VerifyPassword(user.PasswordHash, currentPassword) {
		return errors.New("AuthLogic.ChangePassword.VerifyPassword", i18n.ERROR_INVALID_PASSWORD, nil).Code(http.StatusUnauthorized)
	}

	hash, err := utils.GenPasswordHash(newPassword)
	if err != nil {
		return errors.New("AuthLogic.ChangePassword.GenPasswordHash", i18n.ERROR_INTERNAL, err)
	}

	if err = l.core.Store().UserStore().UpdatePassword(l.ctx, user.ID, hash, time.Now().Unix()); err != nil {
		return errors.New("AuthLogic.ChangePassword.UserStore.UpdatePassword", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
