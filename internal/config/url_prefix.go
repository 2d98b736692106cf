package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix представляет базовый адрес, от которого строятся короткие URL.
// Хвостовой слэш отбрасывается, чтобы url.JoinPath не удваивал разделитель
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", value, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base URL %q must use http or https", value)
	}
	if parsed.Host == "" {
		return fmt.Errorf("base URL %q has no host", value)
	}

	*p = URLPrefix(strings.TrimRight(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
