// Package di provides small, explicit dependency wiring helpers.
//
// A Service[T] pairs a constructed value with a bag of the dependencies that
// were injected into it. Injectors are plain functions built with Injecting;
// they record the dependency under a key and call a bind function that
// assigns it to the target. Wiring mistakes (nil targets, nil dependencies,
// duplicate keys) come back as typed errors that tests can match with
// errors.Is and errors.As.
//
// Optional dependencies are looked up through a Registry at build time.
//
// There is no container and no reflection-based injection: the composition
// root (cmd/greet) decides what is wired where.
//
//	svc := di.Init(greeter.New)
//	log := di.Init(func() *zap.Logger { return logger })
//	_, err := svc.With(di.Injecting(greeter.KeyLogger, log, (*greeter.Greeter).SetLogger))
package di
