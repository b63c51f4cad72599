package models

// OAuthDebug is returned by the OAuth URL endpoint instead of a redirect
// when the debug flag is present.
type OAuthDebug struct {
	AuthURL     string `json:"authUrl"`
	ClientID    string `json:"clientId"`
	RedirectURI string `json:"redirectUri"`
	Scope       string `json:"scope"`
	State       string `json:"state"`
}
