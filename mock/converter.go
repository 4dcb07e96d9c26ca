package mock

import "github.com/fwojciec/storyllms"

var _ storyllms.Converter = (*Converter)(nil)

// Converter is a mock implementation of storyllms.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
