package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tolerant extractors for admin-authored documents. Collections like package
// and hotelRooms are written by an external system and drift over time: ids
// may be ObjectIDs or plain strings, numbers may arrive as int32/int64/double,
// dates as BSON datetimes or strings. A field that cannot be read maps to its
// zero value so the read path never fails on a malformed document.

func asID(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	}
	return ""
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// asTime accepts BSON datetimes and the date-string formats the legacy data
// carries. Unparseable values map to the zero time, which the pricing layer
// treats as a non-match.
func asTime(v interface{}) time.Time {
	switch d := v.(type) {
	case primitive.DateTime:
		return d.Time().UTC()
	case time.Time:
		return d.UTC()
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, d); err == nil {
				return t.UTC()
			}
		}
	}
	return time.Time{}
}

func asArray(v interface{}) bson.A {
	a, _ := v.(bson.A)
	return a
}

func asDoc(v interface{}) bson.M {
	m, _ := v.(bson.M)
	return m
}

func asTimeSlice(v interface{}) []time.Time {
	arr := asArray(v)
	if len(arr) == 0 {
		return nil
	}
	out := make([]time.Time, 0, len(arr))
	for _, item := range arr {
		// keep pairing with the sibling array even when an entry is junk
		out = append(out, asTime(item))
	}
	return out
}

func asStringSlice(v interface{}) []string {
	arr := asArray(v)
	if len(arr) == 0 {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		out = append(out, asID(item))
	}
	return out
}

// idFilter matches a document whether its _id is stored as an ObjectID or as
// a plain string.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
	}
	return bson.M{"_id": id}
}

// idsFilter is the $in form of idFilter for key-set lookups.
func idsFilter(ids []string) bson.M {
	values := make(bson.A, 0, 2*len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			values = append(values, oid)
		}
		values = append(values, id)
	}
	return bson.M{"_id": bson.M{"$in": values}}
}
