//go:build !windows && !darwin && !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package opener

// no known file manager launcher, Open fails with an unavailable error.
const defaultProgram = ""
