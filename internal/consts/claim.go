package consts

// Claim strings.
const (
	ClaimIssuer                           = "iss"
	ClaimSubject                          = "sub"
	ClaimAudience                         = "aud"
	ClaimExpirationTime                   = "exp"
	ClaimIssuedAt                         = "iat"
	ClaimNonce                            = "nonce"
	ClaimAuthenticationTime               = "auth_time"
	ClaimAuthenticationContextClassRef    = "acr"
	ClaimCodeHash                         = "c_hash"
	ClaimAccessTokenHash                  = "at_hash"
	ClaimIDTokenAuthenticationContextPath = "id_token.acr"
)
