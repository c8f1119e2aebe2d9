package main

import "embed"

// configFS holds physics.yaml and the level files shipped with the binary
//
//go:embed configs
var configFS embed.FS
