package project

import (
	"fmt"
	"net/url"
)

// Repository is a package registry handed through to the external build tool.
type Repository struct {
	Name string
	URL  string
}

// Well-known registries that can be referred to by name only.
var wellKnownRepositories = map[string]Repository{
	"google": {
		Name: "google",
		URL:  "https://dl.google.com/dl/android/maven2/",
	},
	"mavenCentral": {
		Name: "mavenCentral",
		URL:  "https://repo.maven.apache.org/maven2/",
	},
}

// DefaultRepositories are used when the PROJECT file lists none: the platform
// vendor registry first, then the primary package registry.
func DefaultRepositories() []Repository {
	return []Repository{wellKnownRepositories["google"], wellKnownRepositories["mavenCentral"]}
}

// UnmarshalYAML accepts either a bare well-known name or a `{name, url}` mapping.
func (r *Repository) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		known, ok := wellKnownRepositories[name]
		if !ok {
			return fmt.Errorf("unknown repository '%s': specify it as {name, url}", name)
		}
		*r = known
		return nil
	}

	var raw struct {
		Name string `yaml:"name"`
		URL  string `yaml:"url"`
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if raw.URL == "" {
		known, ok := wellKnownRepositories[raw.Name]
		if !ok {
			return fmt.Errorf("repository '%s' has no url", raw.Name)
		}
		*r = known
		return nil
	}
	if _, err := url.ParseRequestURI(raw.URL); err != nil {
		return fmt.Errorf("repository '%s' has an invalid url: %w", raw.Name, err)
	}
	if raw.Name == "" {
		raw.Name = raw.URL
	}
	*r = Repository{Name: raw.Name, URL: raw.URL}
	return nil
}

// MarshalYAML writes well-known registries by name only.
func (r Repository) MarshalYAML() (interface{}, error) {
	if known, ok := wellKnownRepositories[r.Name]; ok && known.URL == r.URL {
		return r.Name, nil
	}
	return map[string]string{"name": r.Name, "url": r.URL}, nil
}
