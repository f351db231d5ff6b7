package liftlog

import _ "embed"

// DefaultSeed is the seed data shipped with the module, used when no seed
// file is configured.
//
//go:embed seed.yaml
var DefaultSeed []byte
