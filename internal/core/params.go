package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes free-form text such as a rule name.
	ParamTypeString ParamType = "string"
)

// Parameter is one labelled value published for display.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values a sim or front end publishes.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, param := range group.Params {
			if param.Key == key {
				return param, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterProvider publishes a snapshot of current values.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControl describes an integer parameter the HUD may adjust.
type ParameterControl struct {
	Key   string
	Label string
	Step  int
	Min   int
	Max   int
}

// Clamp bounds v to the control's range.
func (c ParameterControl) Clamp(v int) int {
	if v < c.Min {
		return c.Min
	}
	if c.Max > c.Min && v > c.Max {
		return c.Max
	}
	return v
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}
