// Package config loads, normalizes, and validates scene2motn configuration.
//
// Settings come from a TOML file (the --config flag, the user config
// directory, or ./scene2motn.toml) layered over repository defaults. The
// destination application selected here decides the translation scale and
// whether the static tracker cap applies.
package config
