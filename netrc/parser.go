// Package netrc reads repository credentials from a .netrc file.
package netrc

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// BasicAuth is the login and password of one machine entry.
type BasicAuth struct {
	User     string
	Password string
}

// File holds the credentials of every machine listed in a .netrc file.
type File struct {
	machines map[string]BasicAuth
	fallback *BasicAuth
}

// DefaultPath returns `$NETRC` if set, `~/.netrc` otherwise.
func DefaultPath() (string, error) {
	if p := os.Getenv("NETRC"); p != "" {
		return homedir.Expand(p)
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".netrc"), nil
}

// Load parses the .netrc file at `p`. A missing file yields an empty File.
func Load(p string) (*File, error) {
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return Parse("")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", p, err)
	}
	return Parse(string(data))
}

// Parse parses the content of a .netrc file. Tokens may be spread over lines
// arbitrarily; `macdef` bodies are skipped.
func Parse(content string) (*File, error) {
	f := &File{machines: map[string]BasicAuth{}}

	var current *BasicAuth
	var currentMachine string
	commit := func() {
		if current == nil {
			return
		}
		if currentMachine == "" {
			f.fallback = current
		} else {
			f.machines[currentMachine] = *current
		}
		current = nil
	}

	lines := strings.Split(content, "\n")
	for i := 0; i < len(lines); i++ {
		tokens := strings.Fields(lines[i])
		for j := 0; j < len(tokens); j++ {
			token := tokens[j]
			if strings.HasPrefix(token, "#") {
				break
			}
			next := func() (string, error) {
				if j+1 >= len(tokens) {
					return "", fmt.Errorf("line %d: missing value after %q", i+1, token)
				}
				j++
				return tokens[j], nil
			}

			switch token {
			case "machine":
				commit()
				name, err := next()
				if err != nil {
					return nil, err
				}
				currentMachine = name
				current = &BasicAuth{}
			case "default":
				commit()
				currentMachine = ""
				current = &BasicAuth{}
			case "login", "password", "account":
				value, err := next()
				if err != nil {
					return nil, err
				}
				if current == nil {
					return nil, fmt.Errorf("line %d: %q outside of a machine entry", i+1, token)
				}
				if token == "login" {
					current.User = value
				} else if token == "password" {
					current.Password = value
				}
			case "macdef":
				commit()
				// The macro body runs until the next empty line.
				for i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
					i++
				}
				j = len(tokens)
			default:
				return nil, fmt.Errorf("line %d: unexpected token %q", i+1, token)
			}
		}
	}
	commit()
	return f, nil
}

// AuthForURL returns the credentials for the host of `urlString`, or nil if there are none.
func (f *File) AuthForURL(urlString string) (*BasicAuth, error) {
	u, err := url.Parse(urlString)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", urlString, err)
	}

	if auth, ok := f.machines[u.Hostname()]; ok {
		return &auth, nil
	}
	return f.fallback, nil
}
