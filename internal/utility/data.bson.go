package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap converte um struct em map[string]interface{} via marshalling BSON,
// respeitando as tags bson do model (inclusive omitempty).
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("falha no marshal BSON: %w", err)
	}
	err = bson.Unmarshal(raw, &stringInterfaceMap)
	if err != nil {
		return nil, fmt.Errorf("falha no unmarshal BSON: %w", err)
	}
	return stringInterfaceMap, nil
}
