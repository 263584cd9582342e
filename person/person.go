// Package person defines the Person entity.
//
// A Person holds a name that is set once at construction and produces a
// greeting derived from it. Names are not validated: the empty name is a
// valid name and greets as "Hello !".
//
//	p := person.New("John Doe")
//	p.Greet() // "Hello John Doe!"
package person

// Greeting phrase parts wrapped around the name.
const (
	GreetingPrefix = "Hello "
	GreetingSuffix = "!"
)

// Person is a named individual.
//
// The name is unexported so it cannot change after New; a Person is safe to
// share between goroutines.
type Person struct {
	name string
}

// New returns a Person with the given name.
func New(name string) *Person {
	return &Person{name: name}
}

// Name returns the name the Person was created with.
func (p *Person) Name() string {
	if p == nil {
		return ""
	}
	return p.name
}

// Greet returns "Hello <name>!".
func (p *Person) Greet() string {
	return GreetingPrefix + p.Name() + GreetingSuffix
}

// String implements fmt.Stringer.
func (p *Person) String() string { return p.Name() }
