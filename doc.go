// Package greet is a small, explicit example of a named entity that produces a greeting.
//
// The repository is organised the same way as a larger service would be:
//
//   - person: the Person entity (construct with a name, Greet)
//   - greeter: a service that greets persons and logs what it did
//   - di: explicit dependency wiring helpers used by the composition root
//   - internal/config, internal/logging: YAML config and zap logger setup
//   - cmd/greet: the CLI
//   - examples/person: the smallest runnable usage
//
// Wiring stays explicit in the composition root (cmd/greet); there is no
// reflection-based container.
package greet
