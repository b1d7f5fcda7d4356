package entity

import "encoding/json"

// Exercise is one entry of the static exercise catalog. Fields the catalog
// does not query are kept verbatim in Extra and written back on encode, so
// clients receive each dataset object unchanged.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BodyPart         string   `json:"bodyPart"`
	Equipment        string   `json:"equipment"`
	Target           string   `json:"target"`
	GifURL           string   `json:"gifUrl,omitempty"`
	SecondaryMuscles []string `json:"secondaryMuscles,omitempty"`
	Instructions     []string `json:"instructions,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// exerciseFields has Exercise's layout without its JSON methods.
type exerciseFields Exercise

var exerciseKeys = []string{"id", "name", "bodyPart", "equipment", "target", "gifUrl", "secondaryMuscles", "instructions"}

func (e *Exercise) UnmarshalJSON(b []byte) error {
	var f exerciseFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for _, k := range exerciseKeys {
		delete(raw, k)
	}
	f.Extra = nil
	if len(raw) > 0 {
		f.Extra = raw
	}
	*e = Exercise(f)
	return nil
}

func (e Exercise) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(exerciseFields(e))
	if err != nil || len(e.Extra) == 0 {
		return b, err
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	for k, v := range e.Extra {
		if _, known := out[k]; !known {
			out[k] = v
		}
	}
	return json.Marshal(out)
}
