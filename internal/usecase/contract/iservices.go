package usecasecontract

import "time"

// IAppLogger defines the interface for application logging.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes the configuration values usecases depend on.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetTokenExpiry() time.Duration
	GetCORSAllowedOrigins() []string
	GetVideoBucketName() string
}

// IValidator defines the interface for input validation.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}
