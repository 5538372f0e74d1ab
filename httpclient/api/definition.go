package api

import "encoding/json"

// Empty is a placeholder payload for endpoints without a meaningful body.
type Empty = map[string]string

// Route is the path half of a definition.
type Route interface {
	PathComponents() []string
	ParentPath() string
}

// Definition describes one endpoint taking In and returning Out.
type Definition[In, Out any] interface {
	Route
	Method() Method
	Decode(data []byte) (Out, error)
}

// DecodeJSON is the default decoder: it unmarshals data into a fresh Out.
func DecodeJSON[Out any](data []byte) (Out, error) {
	var out Out
	err := json.Unmarshal(data, &out)
	return out, err
}

// Endpoint is a literal Definition.
type Endpoint[In, Out any] struct {
	// Components are the endpoint's path components; only the last is used
	// to form the path.
	Components []string
	// Parent is the path the last component is appended to.
	Parent string
	// Verb is the dispatch method.
	Verb Method
	// DecodeFunc overrides JSON decoding of responses.
	DecodeFunc func(data []byte) (Out, error)
}

var _ Definition[Empty, Empty] = Endpoint[Empty, Empty]{}

// PathComponents implements Route.
func (e Endpoint[In, Out]) PathComponents() []string { return e.Components }

// ParentPath implements Route.
func (e Endpoint[In, Out]) ParentPath() string { return e.Parent }

// Method implements Definition.
func (e Endpoint[In, Out]) Method() Method { return e.Verb }

// Decode implements Definition.
func (e Endpoint[In, Out]) Decode(data []byte) (Out, error) {
	if e.DecodeFunc != nil {
		return e.DecodeFunc(data)
	}
	return DecodeJSON[Out](data)
}

// Path returns the endpoint's relative path.
func (e Endpoint[In, Out]) Path() string { return Path(e) }

// Any holds any Definition[In, Out] behind one concrete type. The wrapped
// definition's path, method and decoder are captured when Wrap is called.
type Any[In, Out any] struct {
	components []string
	parent     string
	method     Method
	decode     func([]byte) (Out, error)
}

var _ Definition[Empty, Empty] = Any[Empty, Empty]{}

// Wrap erases the concrete type of def.
func Wrap[In, Out any](def Definition[In, Out]) Any[In, Out] {
	components := def.PathComponents()
	return Any[In, Out]{
		components: append([]string(nil), components...),
		parent:     def.ParentPath(),
		method:     def.Method(),
		decode:     def.Decode,
	}
}

// PathComponents implements Route.
func (a Any[In, Out]) PathComponents() []string { return a.components }

// ParentPath implements Route.
func (a Any[In, Out]) ParentPath() string { return a.parent }

// Method implements Definition.
func (a Any[In, Out]) Method() Method { return a.method }

// Decode implements Definition using the wrapped definition's decoder.
func (a Any[In, Out]) Decode(data []byte) (Out, error) {
	if a.decode == nil {
		return DecodeJSON[Out](data)
	}
	return a.decode(data)
}
