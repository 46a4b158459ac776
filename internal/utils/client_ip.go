package utils

import (
	"net"
	"net/http"
	"strings"
)

// DetectClientIP extracts the caller's IP from proxy headers, falling back
// to the socket address.
func DetectClientIP(r *http.Request) string {
	forwardedFor := r.Header.Get("X-Forwarded-For")
	if forwardedFor != "" {
		for _, ip := range strings.Split(forwardedFor, ",") {
			cleanIP := strings.TrimSpace(ip)
			if isValidIP(cleanIP) {
				return cleanIP
			}
		}
	}

	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" && isValidIP(realIP) {
		return realIP
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && isValidIP(ip) {
		return ip
	}
	return r.RemoteAddr
}

func isValidIP(ip string) bool {
	return net.ParseIP(ip) != nil
}
