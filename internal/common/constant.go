package common

// AuthHeaderName is the HTTP header carrying the bearer token on
// authenticated requests.
const AuthHeaderName = "Authorization"

// AuthScheme is the expected prefix of the auth header value.
const AuthScheme = "Bearer"
