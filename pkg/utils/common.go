package utils

import (
	"context"
	"net/http"

	"finan/ms-pos-report/pkg/model"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/logger"
)

// CheckStoreScope rejects callers whose token is bound to another store.
func CheckStoreScope(ctx context.Context, identity model.Identity, storeID uuid.UUID) error {
	log := logger.WithCtx(ctx, "CheckStoreScope").WithField("store ID", storeID)

	if identity.StoreID != storeID {
		log.WithField("caller store ID", identity.StoreID).Error("error_403: store scope mismatch")
		return NewError(http.StatusForbidden, MESS_STORE_REPORT_FORBIDDEN)
	}

	return nil
}
