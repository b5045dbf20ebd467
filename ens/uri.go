package ens

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	ipfsRegexp = regexp.MustCompile(`(?i)^ipfs:(//)?(.*)$`)
	ipnsRegexp = regexp.MustCompile(`(?i)^ipns:(//)?(.*)$`)
	arRegexp   = regexp.MustCompile(`(?i)^ar:(//)?(.*)$`)
)

// URIToHTTP expands a token logo or avatar URI into fetchable HTTP URLs,
// ordered by preference. Plain HTTP is upgraded to HTTPS with the original
// kept as a fallback; content-addressed schemes go through public
// gateways. Inputs come from ENS text records and token lists, so
// malformed URIs pass through unchanged instead of failing.
func URIToHTTP(uri string) []string {
	protocol := strings.ToLower(strings.SplitN(uri, ":", 2)[0])
	switch protocol {
	case "data", "https":
		return []string{uri}
	case "http":
		return []string{"https" + uri[4:], uri}
	case "ipfs":
		if m := ipfsRegexp.FindStringSubmatch(uri); m != nil {
			return []string{
				fmt.Sprintf("https://cloudflare-ipfs.com/ipfs/%s/", m[2]),
				fmt.Sprintf("https://ipfs.io/ipfs/%s/", m[2]),
			}
		}
		return []string{uri}
	case "ipns":
		if m := ipnsRegexp.FindStringSubmatch(uri); m != nil {
			return []string{
				fmt.Sprintf("https://cloudflare-ipfs.com/ipns/%s/", m[2]),
				fmt.Sprintf("https://ipfs.io/ipns/%s/", m[2]),
			}
		}
		return []string{uri}
	case "ar":
		if m := arRegexp.FindStringSubmatch(uri); m != nil {
			return []string{fmt.Sprintf("https://arweave.net/%s", m[2])}
		}
		return []string{uri}
	default:
		return []string{uri}
	}
}
