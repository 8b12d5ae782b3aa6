package contact

// Submission carries the raw form fields exactly as posted. Every value is
// an untrusted string; nothing here outlives the request.
type Submission struct {
	Name      string `form:"name"`
	Company   string `form:"company"`
	Phone     string `form:"phone"`
	Email     string `form:"email"`
	Message   string `form:"message"`
	Category  string `form:"category"`
	Honeypot  string `form:"website"`
	Timestamp string `form:"timestamp"`
	Token     string `form:"g-recaptcha-response"`
}

// RequestMeta carries request context that ends up in the composed message.
// It is passed explicitly so message composition stays a pure function.
type RequestMeta struct {
	ClientIP  string
	Referer   string
	UserAgent string
}

// Field length caps applied during sanitization.
const (
	maxNameLen     = 100
	maxCompanyLen  = 100
	maxPhoneLen    = 30
	maxMessageLen  = 2000
	maxCategoryLen = 50
)

// Categories is the closed set of accepted category codes.
var Categories = []string{
	"administration",
	"human-resources",
	"information",
	"complains-claims",
	"sales",
	"providers",
}
