package common

// AuthorizationHeader is the HTTP header carrying the bearer token on
// privileged requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix precedes the token value inside AuthorizationHeader.
const BearerPrefix = "Bearer "
