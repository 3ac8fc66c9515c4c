package service

// AntiFakeCodeGenerator produces opaque anti-counterfeit codes stamped on
// product units at registration time.
type AntiFakeCodeGenerator interface {
	// Generate returns a new code: "AF" + base-36 millisecond timestamp +
	// 8 random base-36 characters, all uppercase.
	Generate() string
}
