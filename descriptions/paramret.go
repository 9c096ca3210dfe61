// Package descriptions holds the JSON-backed language list and
// parser-string class descriptions that drive file generation.
package descriptions

// ParamDesc describes one method parameter in the generic type system.
// Types are generic names (string, text, size, integer, unsigned, LANID)
// translated to target-language types by the generators.
type ParamDesc struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Desc   string `json:"desc"`
	IsList bool   `json:"isList,omitempty"`
}

// ReturnDesc describes a method return value in the generic type system.
type ReturnDesc struct {
	Type   string `json:"type"`
	Desc   string `json:"desc"`
	IsList bool   `json:"isList,omitempty"`
}

// ParamNames extracts the ordered parameter name list.
func ParamNames(params []ParamDesc) []string {
	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.Name)
	}
	return names
}
