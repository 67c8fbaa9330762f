// internal/version/version.go
package version

// Version is the released tool version, bumped on tagged releases.
const Version = "1.0.0"
