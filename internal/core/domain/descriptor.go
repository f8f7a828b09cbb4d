package domain

import "encoding/json"

// ModuleDescriptor is one module's descriptor document. Dependencies and
// Resources are the only keys the resolver interprets; every other key in
// the document is kept in Extra and round-tripped untouched so that
// downstream consumers of the manifest see the full descriptor.
type ModuleDescriptor struct {
	Name         string
	Dependencies []string
	Resources    []string
	Extra        map[string]any
}

// ApplicationDocument is the parsed application descriptor: the application's
// own module entries, an optional parent application to extend, and the
// worker flag (false when absent).
type ApplicationDocument struct {
	Modules []*ModuleDescriptor `json:"modules"`
	Extends string              `json:"extends,omitempty"`
	Worker  bool                `json:"worker,omitempty"`
}

// Manifest is the serializable projection of an application's own module
// descriptors, in the order the application document declared them.
// Serialization is left to the caller.
type Manifest struct {
	Modules []*ModuleDescriptor `json:"modules"`
}

// UnmarshalJSON decodes the recognized keys into their typed fields and
// collects every other key into Extra.
func (d *ModuleDescriptor) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = ModuleDescriptor{}
	for key, value := range raw {
		switch key {
		case "name":
			if err := json.Unmarshal(value, &d.Name); err != nil {
				return err
			}
		case "dependencies":
			if err := json.Unmarshal(value, &d.Dependencies); err != nil {
				return err
			}
		case "resources":
			if err := json.Unmarshal(value, &d.Resources); err != nil {
				return err
			}
		default:
			if d.Extra == nil {
				d.Extra = make(map[string]any)
			}
			var v any
			if err := json.Unmarshal(value, &v); err != nil {
				return err
			}
			d.Extra[key] = v
		}
	}
	return nil
}

// MarshalJSON merges the typed fields back with the passthrough keys.
// Absent optional fields stay absent in the output.
func (d *ModuleDescriptor) MarshalJSON() ([]byte, error) {
	merged := make(map[string]any, len(d.Extra)+3)
	for key, value := range d.Extra {
		merged[key] = value
	}
	if d.Name != "" {
		merged["name"] = d.Name
	}
	if d.Dependencies != nil {
		merged["dependencies"] = d.Dependencies
	}
	if d.Resources != nil {
		merged["resources"] = d.Resources
	}
	return json.Marshal(merged)
}
