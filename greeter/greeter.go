// Package greeter greets persons and logs each greeting.
package greeter

import (
	"fmt"

	"github.com/sghaida/greet/di"
	"github.com/sghaida/greet/internal/config"
	"github.com/sghaida/greet/person"
	"go.uber.org/zap"
)

// KeyLogger is the dependency key the logger is injected under.
const KeyLogger di.DependencyKey = "logger"

// RegistryKeyLogger is the optional registry entry Build reads a *zap.Logger from.
const RegistryKeyLogger = "greeter.logger"

// Greeter produces greetings for persons. Its only state is the logger.
type Greeter struct {
	log *zap.Logger
}

// New returns a Greeter that logs nowhere.
func New() *Greeter {
	return &Greeter{log: zap.NewNop()}
}

// SetLogger replaces the logger. A nil logger restores the no-op logger.
func (g *Greeter) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	g.log = l
}

// Greet returns p's greeting. A nil p greets the empty name.
func (g *Greeter) Greet(p *person.Person) string {
	msg := p.Greet()
	g.log.Debug("greeted", zap.String("name", p.Name()), zap.String("greeting", msg))
	return msg
}

// GreetNames greets each name in order.
func (g *Greeter) GreetNames(names ...string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, g.Greet(person.New(n)))
	}
	return out
}

// Build constructs a Greeter and injects the logger found in reg under
// RegistryKeyLogger, if any.
func Build(cfg config.Config, reg di.Registry) (*di.Service[Greeter], error) {
	svc := di.Init(New)

	raw, ok, err := di.SafeResolve(reg, cfg, RegistryKeyLogger)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", RegistryKeyLogger, err)
	}
	if !ok || raw == nil {
		return svc, nil
	}

	logger, isLogger := raw.(*zap.Logger)
	if !isLogger {
		return nil, fmt.Errorf("resolving %s: want *zap.Logger, got %T", RegistryKeyLogger, raw)
	}

	dep := di.Init(func() *zap.Logger { return logger })
	if _, err := svc.With(di.Injecting(KeyLogger, dep, (*Greeter).SetLogger)); err != nil {
		return nil, fmt.Errorf("injecting logger: %w", err)
	}
	return svc, nil
}
