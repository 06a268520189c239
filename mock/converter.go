package mock

import "github.com/fwojciec/seofetch"

var _ seofetch.Converter = (*Converter)(nil)

// Converter is a mock implementation of seofetch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
