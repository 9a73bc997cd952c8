//go:build unit

package middleware

var CORSConfig = corsConfig
