package domain

import "fmt"

// ConfigurationError reports a value the operator forgot to replace.
// It is raised before any mutating step runs.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// ToolInvocationError reports an external tool exiting non-zero.
type ToolInvocationError struct {
	Command string
	Err     error
}

func (e *ToolInvocationError) Error() string {
	return fmt.Sprintf("command failed: %s: %v", e.Command, e.Err)
}

func (e *ToolInvocationError) Unwrap() error { return e.Err }

// ReadinessTimeoutError reports a service that never answered with an
// accepted status within the attempt budget.
type ReadinessTimeoutError struct {
	URL      string
	Attempts int
}

func (e *ReadinessTimeoutError) Error() string {
	return fmt.Sprintf("service at %s not ready after %d attempts", e.URL, e.Attempts)
}

// CertificateAcquisitionError reports a failed certbot run. It is
// surfaced as a warning: the HTTP-only site keeps working and the
// operator can retry certbot by hand once DNS resolves.
type CertificateAcquisitionError struct {
	Host string
	Err  error
}

func (e *CertificateAcquisitionError) Error() string {
	return fmt.Sprintf("certificate acquisition failed for %s: %v", e.Host, e.Err)
}

func (e *CertificateAcquisitionError) Unwrap() error { return e.Err }

// ReverseProxyValidationError reports an nginx config that failed the
// syntax check. The reload is skipped so the previous valid
// configuration stays active.
type ReverseProxyValidationError struct {
	Output string
}

func (e *ReverseProxyValidationError) Error() string {
	return fmt.Sprintf("nginx configuration check failed: %s", e.Output)
}
