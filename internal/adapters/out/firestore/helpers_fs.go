package firestore

import (
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// isNotFound maps the gRPC NotFound code used by the Firestore client.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

var errNilClient = errors.New("firestore: client is nil")

// ------------------------------------------
// tolerant value coercion for snap.Data()
//
// Firestore hands back loosely-typed values (historic documents may carry a
// different shape than the current writer). These helpers absorb the common
// variants instead of failing the whole decode.
// ------------------------------------------

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return ""
	}
}

func asInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int32:
		return int(t)
	case int64:
		return int(t)
	case float64:
		return int(t)
	case float32:
		return int(t)
	default:
		return 0
	}
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case float64:
		return int64(t)
	case float32:
		return int64(t)
	default:
		return 0
	}
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	case string:
		if tt, err := time.Parse(time.RFC3339, strings.TrimSpace(t)); err == nil {
			return tt, true
		}
	}
	return time.Time{}, false
}

func asStringMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// sortFieldValue extracts the order-by field value from a cursor document so
// StartAfter can be fed (fieldValue, docID) pairs.
func sortFieldValue(snap *firestore.DocumentSnapshot, field string) any {
	if snap == nil {
		return nil
	}
	data := snap.Data()
	if data == nil {
		return nil
	}
	return data[field]
}
