package oascatalog

import "fmt"

// version is stamped by the release pipeline via -ldflags; builds from
// source report "dev".
var version = "dev"

// Version reports the build's version string.
func Version() string {
	return version
}

// UserAgent is the User-Agent value sent on outbound HTTP requests.
func UserAgent() string {
	return fmt.Sprintf("oascatalog/%s", version)
}
