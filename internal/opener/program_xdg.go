//go:build linux || freebsd || openbsd || netbsd || dragonfly

package opener

const defaultProgram = "xdg-open"
