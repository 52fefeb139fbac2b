package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocID is a document _id in its hex or plain string form. Classes created
// by older clients carry string ids, newer ones get an ObjectID.
type DocID string

// IsZero reports whether the id is unset.
func (id DocID) IsZero() bool {
	return id == ""
}

// MarshalBSONValue writes a 24 character hex id as an ObjectID and anything
// else as a string.
func (id DocID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if oid, err := primitive.ObjectIDFromHex(string(id)); err == nil {
		return bson.MarshalValue(oid)
	}
	return bson.MarshalValue(string(id))
}

// UnmarshalBSONValue accepts an ObjectID or a string _id.
func (id *DocID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.ObjectID:
		oid, ok := raw.ObjectIDOK()
		if !ok {
			return fmt.Errorf("invalid ObjectID _id")
		}
		*id = DocID(oid.Hex())
	case bsontype.String:
		s, ok := raw.StringValueOK()
		if !ok {
			return fmt.Errorf("invalid string _id")
		}
		*id = DocID(s)
	case bsontype.Null, bsontype.Undefined:
		*id = ""
	default:
		return fmt.Errorf("unsupported _id type %s", t)
	}
	return nil
}
