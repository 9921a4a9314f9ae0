package models

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// SpecMap holds the free-form specification key→value pairs. Values were
// written by several client generations as strings, numbers or booleans;
// everything decodes to a string so the comparison table can render it.
type SpecMap map[string]string

func (m *SpecMap) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null:
		*m = nil
		return nil
	case bsontype.EmbeddedDocument:
		var raw bson.M
		if err := bson.UnmarshalValue(t, data, &raw); err != nil {
			return err
		}
		out := make(SpecMap, len(raw))
		for key, value := range raw {
			out[key] = specValueString(value)
		}
		*m = out
		return nil
	default:
		return fmt.Errorf("cannot decode %s into SpecMap", t)
	}
}

func (m SpecMap) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(map[string]string(m))
}

func specValueString(value interface{}) string {
	switch typed := value.(type) {
	case string:
		return typed
	case int32:
		return strconv.Itoa(int(typed))
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return fmt.Sprintf("%v", typed)
	}
}
