//go:build linux || darwin

// Package split breaks a command line into the argument array a POSIX or
// Windows shell would hand to the launched process. Use it to feed
// Parser.ParseArgs with input captured as a single string.
package split

import "github.com/google/shlex"

func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}
	if args == nil {
		args = []string{}
	}
	return args, nil
}
