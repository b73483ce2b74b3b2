package consts

const (
	FormParameterClientID                                  = "client_id"
	FormParameterRedirectURI                               = "redirect_uri"
	FormParameterResponseType                              = "response_type"
	FormParameterResponseMode                              = "response_mode"
	FormParameterScope                                     = "scope"
	FormParameterState                                     = "state"
	FormParameterNonce                                     = "nonce"
	FormParameterPrompt                                    = "prompt"
	FormParameterMaximumAge                                = "max_age"
	FormParameterAuthenticationContextClassReferenceValues = "acr_values"
	FormParameterUILocales                                 = "ui_locales"
	FormParameterClaims                                    = "claims"
	FormParameterIDTokenHint                               = "id_token_hint"
	FormParameterRequest                                   = "request"
	FormParameterRequestURI                                = "request_uri"
	FormParameterAuthorizationCode                         = "code"
	FormParameterAccessToken                               = "access_token"
	FormParameterTokenType                                 = "token_type"
	FormParameterExpiresIn                                 = "expires_in"
	FormParameterIDToken                                   = "id_token"
	FormParameterSessionState                              = "session_state"
	FormParameterIssuer                                    = "iss"
	FormParameterError                                     = "error"
	FormParameterErrorDescription                          = "error_description"
	FormParameterUserPasswordAnswer                        = "upm_answer"
)
