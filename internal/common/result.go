package common

import (
	"errors"
	"net/http"

	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/i18n"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/storage"
)

// ResultCode closed set of outcomes carried by every response envelope
type ResultCode int

const (
	ResultOK                     ResultCode = 0
	ResultFail                   ResultCode = -1
	ResultInvalidInput           ResultCode = 1000
	ResultUnauthorized           ResultCode = 1001
	ResultFailImageUpload        ResultCode = 2000
	ResultNotFoundUser           ResultCode = 2100
	ResultNotFoundGroup          ResultCode = 2101
	ResultLowMinGroupNameLength  ResultCode = 2102
	ResultHighMaxGroupNameLength ResultCode = 2103
	ResultNoUserGroupList        ResultCode = 2104
	ResultNotFoundContent        ResultCode = 2200
	ResultNotMatchedUserContent  ResultCode = 2201
	ResultNotFoundImage          ResultCode = 2202
	ResultNotFoundComment        ResultCode = 2300
	ResultNotMatchedUserComment  ResultCode = 2301
	ResultNotFoundNotification   ResultCode = 2400
)

// Message Korean message of the code
func (r ResultCode) Message() string {
	return r.LocalizedMessage(i18n.LocaleKo)
}

// LocalizedMessage message of the code in locale; unknown codes read as ResultFail
func (r ResultCode) LocalizedMessage(locale i18n.Locale) string {
	bundle := i18n.Default()
	key := i18n.ResultKey(int(r))
	if !bundle.Has(i18n.LocaleKo, key) {
		key = i18n.ResultKey(int(ResultFail))
	}
	return bundle.T(locale, key)
}

// HTTPStatus status code used when the result is written
func (r ResultCode) HTTPStatus() int {
	switch r {
	case ResultOK:
		return http.StatusOK
	case ResultInvalidInput, ResultLowMinGroupNameLength, ResultHighMaxGroupNameLength:
		return http.StatusBadRequest
	case ResultUnauthorized:
		return http.StatusUnauthorized
	case ResultNotMatchedUserContent, ResultNotMatchedUserComment:
		return http.StatusForbidden
	case ResultNotFoundUser, ResultNotFoundGroup, ResultNoUserGroupList, ResultNotFoundContent,
		ResultNotFoundImage, ResultNotFoundComment, ResultNotFoundNotification:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ResultFromError maps business errors onto result codes; unknown errors are ResultFail
func ResultFromError(err error) ResultCode {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, ErrInvalidInput):
		return ResultInvalidInput
	case errors.Is(err, ErrUnauthorized):
		return ResultUnauthorized
	case errors.Is(err, ErrImageUpload), errors.Is(err, storage.ErrInvalidFileExtension):
		return ResultFailImageUpload
	case errors.Is(err, ErrUserNotFound):
		return ResultNotFoundUser
	case errors.Is(err, ErrGroupNotFound):
		return ResultNotFoundGroup
	case errors.Is(err, ErrGroupNameTooShort):
		return ResultLowMinGroupNameLength
	case errors.Is(err, ErrGroupNameTooLong):
		return ResultHighMaxGroupNameLength
	case errors.Is(err, ErrNoJoinedGroups):
		return ResultNoUserGroupList
	case errors.Is(err, ErrContentNotFound):
		return ResultNotFoundContent
	case errors.Is(err, ErrContentNotMatched):
		return ResultNotMatchedUserContent
	case errors.Is(err, ErrImageNotFound):
		return ResultNotFoundImage
	case errors.Is(err, ErrCommentNotFound):
		return ResultNotFoundComment
	case errors.Is(err, ErrCommentNotMatched):
		return ResultNotMatchedUserComment
	case errors.Is(err, ErrNotificationNotFound):
		return ResultNotFoundNotification
	default:
		return ResultFail
	}
}
