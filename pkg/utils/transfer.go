package utils

import (
	"strconv"
	"time"

	"vidtube.com/pkg/constants"
)

// Transfer coerces the loosely typed values JWT claims carry into an int64
// id, returning -1 when nothing usable was given.
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}

func ConvertStringToInt64(v string) (int64, error) {
	res, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return -1, err
	}
	return res, nil
}

// Now formats the current time the way every table stores timestamps.
func Now() string {
	return time.Now().Format(constants.DataFormate)
}
