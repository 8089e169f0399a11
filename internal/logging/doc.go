// Package logging builds the process-wide zap logger from configuration.
//
// Services do not depend on this package directly: they accept an injected
// *zap.Logger and use zap.NewNop() in tests. This package only turns a
// validated level/format pair into a configured logger at startup.
package logging
