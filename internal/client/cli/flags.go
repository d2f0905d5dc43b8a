package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// newFlagSet флаги одной команды, ошибки и справка пишутся в c.io
func (c *Cli) newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(c.io)
	fs.Usage = func() {
		c.io.Printf("Usage: codehours %s [flags]\n", name)
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags разбирает аргументы команды
func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}
	return nil
}

// promptIfEmpty запрашивает значение, если флаг не задан
func (c *Cli) promptIfEmpty(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return input, nil
}

// passwordIfEmpty запрашивает пароль без эха, если флаг не задан
func (c *Cli) passwordIfEmpty(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}
