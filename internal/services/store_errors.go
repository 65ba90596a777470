package services

import (
	"go.uber.org/zap"

	"trivia/pkg/utils"
)

// translateStoreError passes business-rule errors through untouched and turns
// everything else into ErrDatabaseError after logging the cause.
func translateStoreError(logger *zap.Logger, op string, err error) error {
	if err == nil || utils.IsDomainError(err) {
		return err
	}
	logger.Error("store operation failed", zap.String("op", op), zap.Error(err))
	return utils.ErrDatabaseError
}
