// Package config loads msgkit configuration.
//
// Sources are layered with koanf, later ones winning:
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file: an explicit path, else config.toml / config.yaml /
//     config.yml under $XDG_CONFIG_HOME/msgkit
//  3. MSGKIT_ environment variables, "__" separating levels
//     (MSGKIT_OUTPUT__COLOR=never, MSGKIT_KINDS__ERROR__PREFIX=E:)
//  4. explicit overrides, usually command-line flags
//
// The merged tree is decoded into Config and validated.
package config
