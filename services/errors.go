package services

import "blogify/models"

func internalError(err error) error {
	return models.ErrorInternalServer{Message: models.MsgServerError, Err: err}
}
