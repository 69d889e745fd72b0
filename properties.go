package gameplayutils

// Properties is an unordered set of property names to values, carrying the custom
// data authored on a scene entity (glTF node extras, typically). Values keep
// whatever dynamic type the scene file gave them; the typed getters return a
// fallback when the property is missing or of another type.
type Properties struct {
	props map[string]any
}

// NewProperties returns a new, empty Properties object.
func NewProperties() *Properties {
	return &Properties{props: map[string]any{}}
}

// Set sets the named property to the given value and returns the Properties object
// for chaining.
func (props *Properties) Set(propName string, value any) *Properties {
	props.props[propName] = value
	return props
}

// Remove removes the named property from the Properties object.
func (props *Properties) Remove(propName string) {
	delete(props.props, propName)
}

// Has returns true if the Properties object has properties by all of the names
// specified, and false otherwise.
func (props *Properties) Has(propNames ...string) bool {
	for _, propName := range propNames {
		if _, exists := props.props[propName]; !exists {
			return false
		}
	}
	return true
}

// Count returns how many properties are set.
func (props *Properties) Count() int {
	return len(props.props)
}

// Get returns the raw value associated with the named property, or nil if it isn't
// set.
func (props *Properties) Get(propName string) any {
	return props.props[propName]
}

// AsString returns the named property as a string, or fallback if the property is
// missing or not a string.
func (props *Properties) AsString(propName string, fallback string) string {
	if value, ok := props.props[propName].(string); ok {
		return value
	}
	return fallback
}

// AsBool returns the named property as a bool, or fallback if the property is
// missing or not a bool.
func (props *Properties) AsBool(propName string, fallback bool) bool {
	if value, ok := props.props[propName].(bool); ok {
		return value
	}
	return fallback
}

// AsFloat64 returns the named property as a float64, or fallback if the property is
// missing or not a number. JSON-sourced numbers always decode as float64, so this is
// the getter for anything numeric in a scene file.
func (props *Properties) AsFloat64(propName string, fallback float64) float64 {
	if value, ok := props.props[propName].(float64); ok {
		return value
	}
	return fallback
}

// ForEach runs the given function for every property set on the Properties object.
func (props *Properties) ForEach(forEach func(propName string, value any)) {
	for propName, value := range props.props {
		forEach(propName, value)
	}
}
