package config

import "github.com/rs/zerolog/log"

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatal().Str("env", envName).Msg("missing required env")
	}
}

func MustNonEmptyBytes(value []byte, envName string) {
	if len(value) == 0 {
		log.Fatal().Str("env", envName).Msg("missing required env")
	}
}
