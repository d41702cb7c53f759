package context

import (
	"context"

	"github.com/muhammadheryan/booking-capacity/constant"
)

func GetAdminID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.AdminIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func WithAdminID(ctx context.Context, adminID uint64) context.Context {
	return context.WithValue(ctx, constant.AdminIDKey, adminID)
}
