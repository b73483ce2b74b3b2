package consts

// HTTP header and value strings.
const (
	HeaderContentType  = "Content-Type"
	HeaderLocation     = "Location"
	HeaderCacheControl = "Cache-Control"
	HeaderPragma       = "Pragma"

	ContentTypeApplicationJSON = "application/json; charset=utf-8"
	ContentTypeTextHTML        = "text/html; charset=utf-8"

	CacheControlNoStore = "no-store"
	PragmaNoCache       = "no-cache"

	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)
