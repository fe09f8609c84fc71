package constants

const (
	ROLE_USER  = "user"
	ROLE_ADMIN = "admin"
)

const (
	PAYMENT_METHOD_ONLINE = "online"
	PAYMENT_METHOD_CASH   = "cash"
	PAYMENT_METHOD_QR     = "qr"

	PAYMENT_STATUS_PENDING   = "pending"
	PAYMENT_STATUS_COMPLETED = "completed"
	PAYMENT_STATUS_FAILED    = "failed"
	PAYMENT_STATUS_CASH      = "cash"
)

const (
	FARE_CLASS_ADULT   = "adult"
	FARE_CLASS_STUDENT = "student"
)

const (
	EVENT_STATUS_UPCOMING = "UPCOMING"
	EVENT_STATUS_ONGOING  = "ONGOING"
	EVENT_STATUS_ENDED    = "ENDED"
)

const (
	ERROR_INPUT                = "INVALID_INPUT"
	ERROR_INTERNAL_ERROR       = "INTERNAL_ERROR"
	ERROR_PARSE_DATA_TO_LOCALS = "PARSE_DATA_TO_LOCALS_FAIL"
	ERROR_CREATE               = "CREATE_FAILED"
	ERROR_EDIT                 = "EDIT_FAILED"
	NOT_FOUND_RECORDS          = "RECORD_NOT_FOUND"
	NOT_ADMIN                  = "ADMIN_PERMISSION_REQUIRED"
	MISSING_LOGIN_INPUT        = "MISSING_LOGIN_INPUT"
	INVALID_EMAIL              = "INVALID_EMAIL"
	INVALID_PASSWORD           = "INVALID_PASSWORD"
	CAN_NOT_HASH_PASSWORD      = "CAN_NOT_HASH_PASSWORD"
	EMAIL_EXISTS               = "EMAIL_ALREADY_REGISTERED"

	EVENT_NOT_FOUND           = "EVENT_NOT_FOUND"
	SHOWTIME_NOT_FOUND        = "SHOWTIME_NOT_FOUND"
	SHOWTIME_EXISTS           = "SHOWTIME_ALREADY_EXISTS"
	NOT_ENOUGH_SEATS          = "NOT_ENOUGH_SEATS"
	DUPLICATE_PAYMENT_REF     = "DUPLICATE_PAYMENT_REFERENCE"
	MISSING_BOOKING_FIELDS    = "MISSING_REQUIRED_BOOKING_FIELDS"
	MISSING_CUSTOMER_INFO     = "CUSTOMER_NAME_AND_PHONE_REQUIRED"
	ONLINE_PAYMENT_ONLY       = "ONLINE_PAYMENT_REQUIRED"
	MISSING_PAYMENT_DETAILS   = "PAYMENT_REFERENCE_STATUS_PLATFORM_REQUIRED"
	TICKET_NOT_FOUND          = "TICKET_NOT_FOUND"
	TICKET_ALREADY_SCANNED    = "TICKET_ALREADY_SCANNED"
	INVALID_QR_TOKEN          = "INVALID_QR_CODE_TOKEN"
	SHOWTIME_HAS_BOOKINGS     = "SHOWTIME_HAS_BOOKINGS"
	CAPACITY_BELOW_SOLD_SEATS = "CAPACITY_BELOW_SOLD_SEATS"
)
