package config

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and saves the resulting
// config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio server.")
	fmt.Println()

	cfg := DefaultConfig()

	urlPrompt := promptui.Prompt{
		Label: "Remote sync endpoint URL",
		Validate: func(s string) error {
			u, err := url.Parse(s)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return fmt.Errorf("must be a full URL")
			}
			return nil
		},
	}
	remoteURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("endpoint prompt: %w", err)
	}
	cfg.RemoteURL = remoteURL

	tokenPrompt := promptui.Prompt{
		Label: "Access token",
		Mask:  '*',
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("token must not be empty")
			}
			return nil
		},
	}
	token, err := tokenPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("token prompt: %w", err)
	}
	cfg.Token = token

	portPrompt := promptui.Prompt{
		Label:   "Listen port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("must be a valid port number")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	cachePrompt := promptui.Prompt{
		Label:   "Cache database path",
		Default: cfg.CachePath,
	}
	cachePath, err := cachePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cache path prompt: %w", err)
	}
	cfg.CachePath = cachePath

	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	fmt.Println("Run `folio serve` to start the server.")
	return cfg, nil
}
