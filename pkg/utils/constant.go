package utils

const (
	IdentityKey = "pos-identity"
	HeaderRoles = "x-user-roles"
)

const (
	MIME_XLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	DATE_FORMAT_QUERY  = "2006-01-02"
	DATE_FORMAT_REPORT = "02/01/2006"
)

// Report timeline covers check-out hours [TIMELINE_START_HOUR, TIMELINE_END_HOUR).
const (
	TIMELINE_START_HOUR = 6
	TIMELINE_END_HOUR   = 24
)

const (
	TABLE_STORE = "store"
)

const (
	ACTION_DOWNLOAD_STORE_REPORT = "download store report"
)

// Client facing messages
const (
	MESS_EMPTY_STORE_ID         = "Store id is empty"
	MESS_EMPTY_SESSION_ID       = "Session id is empty"
	MESS_STORE_NOT_FOUND        = "Store not found"
	MESS_SESSION_NOT_FOUND      = "Session not found"
	MESS_STORE_REPORT_FORBIDDEN = "You are not allowed to get orders of this store"
	MESS_INVALID_DATE           = "Invalid date, expected format yyyy-MM-dd"
	MESS_INVALID_DATE_RANGE     = "Start date must not be after end date"
	MESS_INVALID_PROMOTION_TYPE = "Invalid promotion type"
	MESS_MISSING_BEARER_TOKEN   = "Authorization header required"
	MESS_INVALID_BEARER_TOKEN   = "Invalid or expired token"
	MESS_ROLE_NOT_ALLOWED       = "You do not have permission to access this resource"
)
