package httpclient

import "encoding/base64"

// HeaderAuthorization is the header carrying Basic credentials.
const HeaderAuthorization = "Authorization"

// Credential is an immutable username/password pair for HTTP Basic auth.
type Credential struct {
	Username string
	Password string
}

// BasicAuth creates a Basic auth credential.
func BasicAuth(username, password string) *Credential {
	return &Credential{Username: username, Password: password}
}

// HeaderValue renders the Authorization header value for the credential.
func (c Credential) HeaderValue() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.Username+":"+c.Password))
}

// headers returns the auth layer of a request header set. A nil credential
// contributes nothing.
func (c *Credential) headers() map[string]string {
	if c == nil {
		return nil
	}
	return map[string]string{HeaderAuthorization: c.HeaderValue()}
}
