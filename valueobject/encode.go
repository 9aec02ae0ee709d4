package valueobject

import (
	jsoniter "github.com/json-iterator/go"
	"google.golang.org/protobuf/types/known/structpb"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON writes the fields as a JSON object, keeping insertion order.
func (b Base) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)
	stream.WriteObjectStart()
	i := 0
	b.Range(func(key, value string) bool {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(key)
		stream.WriteString(value)
		i++
		return true
	})
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	buf := stream.Buffer()
	data := make([]byte, len(buf))
	copy(data, buf)
	return data, nil
}

// ToStruct converts the fields to a protobuf Struct of string values.
func (b Base) ToStruct() (*structpb.Struct, error) {
	m := make(map[string]any, b.Len())
	b.Range(func(key, value string) bool {
		m[key] = value
		return true
	})
	return structpb.NewStruct(m)
}

func decodeFields(data []byte) (map[string]string, error) {
	var fields map[string]string
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
