package nats

import "strings"

// SubjectForApplication returns the subject an application is published on.
// Example: "join.applications.acme-trading-ltd"
func SubjectForApplication(prefix, reference string) string {
	return strings.TrimSuffix(prefix, ".") + "." + reference
}

// SubjectForAll returns the wildcard subject matching every application.
// Example: "join.applications.>"
func SubjectForAll(prefix string) string {
	return strings.TrimSuffix(prefix, ".") + ".>"
}
