// Package security builds TLS settings for REST transports.
//
// A zero TLSConfig means "use the platform defaults":
//
//	cfg := security.TLSConfig{CAFile: "/etc/ssl/corp-ca.pem"}
//	transport, err := cfg.Transport()
//	client := rest.New(baseURL, rest.WithTransport(&http.Client{Transport: transport}))
package security
