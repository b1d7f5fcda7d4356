package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-backend/internal/application"
	"github.com/oksasatya/fitness-backend/pkg/helpers"
	"github.com/oksasatya/fitness-backend/pkg/response"
	"github.com/oksasatya/fitness-backend/pkg/validation"
)

// Error messages returned in the envelope.
const (
	MsgValidation         = "ValidationError"
	MsgDuplicateEmail     = "DuplicateEmail"
	MsgInvalidCredentials = "InvalidCredentials"
	MsgNotFound           = "NotFound"
	MsgStorage            = "StorageError"
	MsgInternal           = "InternalError"
)

// writeError maps application errors onto statuses. Internal details are
// logged and never returned.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Error(c, http.StatusBadRequest, MsgValidation, validationReason(err))
	case errors.Is(err, application.ErrDuplicateEmail):
		response.Error(c, http.StatusBadRequest, MsgDuplicateEmail, nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusBadRequest, MsgInvalidCredentials, nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error(c, http.StatusNotFound, MsgNotFound, nil)
	case errors.Is(err, application.ErrStorage):
		helpers.RequestLogger(logger, c).WithError(err).Error("storage failure")
		response.Error(c, http.StatusInternalServerError, MsgStorage, nil)
	default:
		helpers.RequestLogger(logger, c).WithError(err).Error("unhandled error")
		response.Error(c, http.StatusInternalServerError, MsgInternal, nil)
	}
}

func validationReason(err error) any {
	if err.Error() == application.ErrValidation.Error() {
		return nil
	}
	return err.Error()
}

func writeBindError(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, MsgValidation, validation.ToDetails(err))
}
