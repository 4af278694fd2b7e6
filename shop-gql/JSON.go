package shopgql

import "encoding/json"

// JSON is a passthrough scalar for loosely shaped payloads, such as seller
// records and flattened price objects, whose attribute sets are owned by the
// external stores.
type JSON struct {
	Data interface{}
}

func (JSON) ImplementsGraphQLType(name string) bool {
	return name == "JSON"
}

func (a *JSON) UnmarshalGraphQL(input interface{}) error {
	a.Data = input
	return nil
}

func (a JSON) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Data)
}
