package server

import (
	"errors"
	"fmt"
	"strconv"
)

type Config struct {
	Port        string
	ProxySecret string
}

func (c *Config) Validate() error {
	if err := validatePort(c.Port); err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}
	return nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
