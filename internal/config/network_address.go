package config

import (
	"fmt"
	"net"
	"strconv"
)

// NetworkAddress представляет адрес HTTP сервера в формате host:port.
// Реализует flag.Value и encoding.TextUnmarshaler, поэтому значение
// может приходить и из флага, и из переменной окружения
type NetworkAddress struct {
	Host string
	Port int
}

func (a NetworkAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetworkAddress) Set(value string) error {
	host, portString, err := net.SplitHostPort(value)
	if err != nil {
		return fmt.Errorf("invalid network address %q: %w", value, err)
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", portString, err)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("port %d is out of range", port)
	}

	a.Host = host
	a.Port = port

	return nil
}

func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
