// Package scrubber removes IP addresses from strings before they end
// up in failure strings or logs.
//
// The patterns are adapted from github.com/keroserene/snowflake's
// common/safelog/safelog.go, Copyright (c) 2016, Serene Han, Arlo
// Breault and Copyright (c) 2019-2020, The Tor Project, Inc, released
// under the BSD 3-clause license.
package scrubber

import "regexp"

const (
	ipv4Address    = `\b(\d{1,3}\.){3}\d{1,3}\b`
	ipv6Address    = `([0-9a-fA-F]{0,4}:){5,7}([0-9a-fA-F]{0,4})?`
	ipv6Compressed = `([0-9a-fA-F]{0,4}:){0,5}([0-9a-fA-F]{0,4})?(::)([0-9a-fA-F]{0,4}:){0,5}([0-9a-fA-F]{0,4})?`
	ipv6Full       = `(` + ipv6Address + `(` + ipv4Address + `))` +
		`|(` + ipv6Compressed + `(` + ipv4Address + `))` +
		`|(` + ipv6Address + `)` + `|(` + ipv6Compressed + `)`
	optionalPort   = `(:\d{1,5})?`
	addressPattern = `((` + ipv4Address + `)|(\[(` + ipv6Full + `)\])|(` + ipv6Full + `))` + optionalPort
	contextPattern = `(^|\s|[^\w:])` + addressPattern + `(\s|(:\s)|[^\w:]|$)`
)

var (
	contextRegexp = regexp.MustCompile(contextPattern)
	addressRegexp = regexp.MustCompile(addressPattern)
)

// Replacement is what we write in place of an address.
const Replacement = "[scrubbed]"

// Scrub returns s with every IP address (and port) replaced by Replacement.
func Scrub(s string) string {
	return contextRegexp.ReplaceAllStringFunc(s, func(m string) string {
		return addressRegexp.ReplaceAllString(m, Replacement)
	})
}
