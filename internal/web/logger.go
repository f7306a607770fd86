package web

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// webLog is the sub-logger for the web module; every entry carries the
// module=web field.
var webLog zerolog.Logger = log.With().Str("module", "web").Logger()
