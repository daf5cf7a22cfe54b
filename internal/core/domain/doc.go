// Package domain contains the core entities of the skill generation
// pipeline: repository references and metadata, skill manifests and trees,
// validation reports and archives. Types here are pure data plus the
// business rules that belong to them; they never touch the network or the
// filesystem.
package domain
