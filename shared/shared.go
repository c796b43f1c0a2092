package shared

import (
	"classbooking/shared/cache"
	"classbooking/shared/constant"
	"classbooking/shared/dto"
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins key parts with ":" for a namespaced redis key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterActive restricts a query to rows that have not been soft-deleted.
func FilterActive(table string) dto.Filter {
	return dto.Filter{
		Field:    constant.FieldDeletedAt,
		Operator: dto.FilterIsNull,
		Table:    table,
	}
}
