// Package driving defines the inbound ports of the core: the operations
// the CLI invokes on the pipeline services.
package driving
