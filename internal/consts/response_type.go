package consts

// Response Type strings.
const (
	ResponseTypeAuthorizationCodeFlow = "code"
	ResponseTypeImplicitFlowToken     = "token"
	ResponseTypeImplicitFlowIDToken   = "id_token"
	ResponseTypeNone                  = "none"
)
