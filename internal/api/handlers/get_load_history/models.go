package get_load_history

import (
	"fmt"
	"strconv"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// parseLimit разбирает query параметр limit, пустое значение - defaultLimit
func parseLimit(value string) (uint64, error) {
	if value == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, err
	}
	if limit == 0 || limit > maxLimit {
		return 0, fmt.Errorf("limit must be in [1, %d]", maxLimit)
	}
	return limit, nil
}
