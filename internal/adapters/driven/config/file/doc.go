// Package file loads teirank configuration from a TOML file.
//
// Precedence is flags > config file > built-in defaults; this package
// covers the latter two. The default location is ~/.teirank/config.toml
// and a missing file simply yields the defaults.
package file
