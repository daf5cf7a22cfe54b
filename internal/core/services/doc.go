// Package services contains the core pipeline services: repository
// verification with retry, conformance validation and the concurrent
// multi-repository pipeline. Services depend only on the driven ports.
package services
