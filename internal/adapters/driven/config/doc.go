// Package config resolves API credentials from the supported sources in
// precedence order: .claude/config.json, a dotenv file, then the process
// environment. The result is an immutable value handed to the connectors;
// nothing reads global process state ad hoc.
package config
